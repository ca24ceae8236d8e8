package domain

// 追跡対象エレメントの固定名なのだ。集約結果のランキングもこの順序を基準にするのだ。
const (
	ElementSky             = "sky"
	ElementBuildings       = "buildings"
	ElementWater           = "water"
	ElementPeople          = "people"
	ElementVegetation      = "vegetation"
	ElementFoodDrinks      = "food_drinks"
	ElementVehiclesTransit = "vehicles_transit"
)

// TrackedElements は追跡対象 7 エレメントの固定順リストを返します。
func TrackedElements() []string {
	return []string{
		ElementSky,
		ElementBuildings,
		ElementWater,
		ElementPeople,
		ElementVegetation,
		ElementFoodDrinks,
		ElementVehiclesTransit,
	}
}

// Observation は名前で指定された追跡対象エレメントの観測値を返します。
// 未知の名前にはゼロ値を返します。
func (eb *ElementBlock) Observation(name string) ElementObservation {
	if eb == nil {
		return ElementObservation{}
	}
	switch name {
	case ElementSky:
		return eb.Sky
	case ElementBuildings:
		return eb.Buildings
	case ElementWater:
		return eb.Water
	case ElementPeople:
		return eb.People
	case ElementVegetation:
		return eb.Vegetation
	case ElementFoodDrinks:
		return eb.FoodDrinks
	case ElementVehiclesTransit:
		return eb.VehiclesTransit
	}
	return ElementObservation{}
}

// HasPayload はレコードが集約対象となるペイロードを 1 つでも持つかを返します。
func (r AnalysisRecord) HasPayload() bool {
	return r.Scene != nil || r.Elements != nil || r.Visual != nil ||
		r.Mood != nil || len(r.Notable) > 0
}

// IsValid は集約エンジンの入力として有効なレコードかを返します。
// 失敗レコードや空ペイロードは黙って捨てられる契約です（エラーではありません）。
func (r AnalysisRecord) IsValid() bool {
	return r.Success && r.HasPayload()
}
