package service

import (
	"hash/fnv"
	"math/rand"
)

// seedFrom collapses a seed string to the int64 source seed. FNV-1a keeps
// the mapping stable across runs and platforms.
func seedFrom(seed string) int64 {
	h := fnv.New64a()
	h.Write([]byte(seed))
	return int64(h.Sum64())
}

// SeededShuffle permutes items in place as a pure function of seed. The same
// seed always yields the same permutation, which is what lets a participant
// resume by re-entering their name. rand.Shuffle is a uniform Fisher-Yates.
func SeededShuffle(items []string, seed string) {
	r := rand.New(rand.NewSource(seedFrom(seed)))
	r.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

// QuestionSeed is the shuffle seed for the folder order of a participant.
func QuestionSeed(participant string) string {
	return participant + "|questions"
}

// ImageSeed is the shuffle seed for the image order within one folder.
func ImageSeed(participant, folder string) string {
	return participant + "|" + folder
}
