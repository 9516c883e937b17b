package frequencycounter

import "sort"

// FrequencyCounter counts how many times each key appears
// + counts: amount of appearances per key
// + order: keys in order of first appearance. Used to break ties
type FrequencyCounter[K comparable] struct {
	counts map[K]int
	order  []K
}

// Entry a key with its amount of appearances
type Entry[K comparable] struct {
	Key   K
	Count int
}

func NewFrequencyCounter[K comparable]() *FrequencyCounter[K] {
	return &FrequencyCounter[K]{
		counts: make(map[K]int),
	}
}

func (fc *FrequencyCounter[K]) UpdateCounter(key K) {
	if _, ok := fc.counts[key]; !ok {
		fc.order = append(fc.order, key)
	}
	fc.counts[key] += 1
}

// Len returns the amount of distinct keys
func (fc *FrequencyCounter[K]) Len() int {
	return len(fc.order)
}

// GetMostFrequent returns the key with the highest count. When more than one key
// has the highest count, the one that appeared first wins. ok is false if nothing was counted
func (fc *FrequencyCounter[K]) GetMostFrequent() (key K, count int, ok bool) {
	for _, k := range fc.order {
		if fc.counts[k] > count {
			key = k
			count = fc.counts[k]
			ok = true
		}
	}
	return key, count, ok
}

// GetEntries returns every key sorted by count, highest first. Ties keep the order of first appearance
func (fc *FrequencyCounter[K]) GetEntries() []Entry[K] {
	entries := make([]Entry[K], 0, len(fc.order))
	for _, k := range fc.order {
		entries = append(entries, Entry[K]{Key: k, Count: fc.counts[k]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}
