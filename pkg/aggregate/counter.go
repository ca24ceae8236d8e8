package aggregate

import "sort"

// counterEntry は頻度カウンタの 1 項目です。
type counterEntry struct {
	Key   string
	Count int
}

// counter は初見順を記憶する頻度カウンタです。
// 同数のキーが並んだ場合、入力で先に現れたキーが常に先にランクされます。
// この初見順タイブレークは集約結果の再現性の要なので変更しないでください。
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

// Add はキーの出現を 1 回分記録します。
func (c *counter) Add(key string) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// Get はキーの出現数を返します。未登録なら 0 です。
func (c *counter) Get(key string) int {
	return c.counts[key]
}

// Len は異なりキー数を返します。
func (c *counter) Len() int {
	return len(c.counts)
}

// MostCommon は出現数の降順で上位 n 件を返します。n <= 0 なら全件です。
// 安定ソートにより、同数のキーは初見順のまま並びます。
func (c *counter) MostCommon(n int) []counterEntry {
	entries := make([]counterEntry, 0, len(c.order))
	for _, key := range c.order {
		entries = append(entries, counterEntry{Key: key, Count: c.counts[key]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// Top は最頻キーとその出現数を返します。空なら ok が false です。
func (c *counter) Top() (key string, count int, ok bool) {
	top := c.MostCommon(1)
	if len(top) == 0 {
		return "", 0, false
	}
	return top[0].Key, top[0].Count, true
}

// TopOr は最頻キーを返し、空の場合はフォールバック文字列を返します。
func (c *counter) TopOr(fallback string) string {
	if key, _, ok := c.Top(); ok {
		return key
	}
	return fallback
}

// Distribution はキーから出現数へのマップのコピーを返します。
func (c *counter) Distribution() map[string]int {
	dist := make(map[string]int, len(c.counts))
	for k, v := range c.counts {
		dist[k] = v
	}
	return dist
}
