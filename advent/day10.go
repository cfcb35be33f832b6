package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

func init() {
	register("10a", day10a)
	register("10b", day10b)
}

func day10a(lines []string) (int64, error) {
	chain, err := parseChain(lines)
	if err != nil {
		return 0, err
	}
	dist := joltDistribution(chain)
	debugf("jolt differences: 1: %d, 2: %d, 3: %d", dist[1], dist[2], dist[3])
	return dist[1] * dist[3], nil
}

func day10b(lines []string) (int64, error) {
	chain, err := parseChain(lines)
	if err != nil {
		return 0, err
	}
	return countArrangements(chain), nil
}

var (
	errNegativeRating = errors.New("negative adapter rating")
	errBadGap         = errors.New("adapters cannot be chained")
)

// maxStep is the largest joltage difference an adapter accepts.
const maxStep = 3

// parseChain parses adapter ratings and returns the full chain in
// ascending order: the outlet (0), every adapter, then the device
// (highest adapter + 3). Every consecutive difference is 1, 2, or 3.
func parseChain(lines []string) ([]int64, error) {
	chain := make([]int64, 1, len(lines)+2)
	for i, line := range lines {
		n, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %s", i+1, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("line %d: %w %d", i+1, errNegativeRating, n)
		}
		chain = append(chain, n)
	}
	adapters := chain[1:]
	sort.Slice(adapters, func(i, j int) bool { return adapters[i] < adapters[j] })
	chain = append(chain, chain[len(chain)-1]+maxStep)

	for i := 1; i < len(chain); i++ {
		if d := chain[i] - chain[i-1]; d < 1 || d > maxStep {
			return nil, fmt.Errorf("%w: %d follows %d", errBadGap, chain[i], chain[i-1])
		}
	}
	return chain, nil
}

// joltDistribution counts the differences between consecutive elements of
// chain; dist[d] is the number of d-jolt steps.
func joltDistribution(chain []int64) [maxStep + 1]int64 {
	var dist [maxStep + 1]int64
	for i := 1; i < len(chain); i++ {
		dist[chain[i]-chain[i-1]]++
	}
	return dist
}

// countArrangements returns the number of subsequences of chain that keep
// both endpoints and never step by more than maxStep.
func countArrangements(chain []int64) int64 {
	// ways[i] is the number of ways to get from the outlet to chain[i].
	ways := make([]int64, len(chain))
	ways[0] = 1
	for i := 1; i < len(chain); i++ {
		for j := i - 1; j >= 0 && chain[i]-chain[j] <= maxStep; j-- {
			ways[i] += ways[j]
		}
	}
	return ways[len(ways)-1]
}
