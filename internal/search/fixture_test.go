package search_test

import "strings"

const (
	maxPlayer = "MAX"
	minPlayer = "MIN"
)

// treeGame is a two-ply game with fixed leaf values: MAX picks a branch, MIN picks a leaf.
type treeGame struct {
	succs map[string]map[string]string
	utils map[string]float64
	order map[string][]string
}

func newTreeGame() *treeGame {
	return &treeGame{
		succs: map[string]map[string]string{
			"A": {"a1": "B", "a2": "C", "a3": "D"},
			"B": {"b1": "B1", "b2": "B2", "b3": "B3"},
			"C": {"c1": "C1", "c2": "C2", "c3": "C3"},
			"D": {"d1": "D1", "d2": "D2", "d3": "D3"},
		},
		utils: map[string]float64{
			"B1": 3, "B2": 12, "B3": 8,
			"C1": 2, "C2": 4, "C3": 6,
			"D1": 14, "D2": 5, "D3": 2,
		},
		order: map[string][]string{
			"A": {"a1", "a2", "a3"},
			"B": {"b1", "b2", "b3"},
			"C": {"c1", "c2", "c3"},
			"D": {"d1", "d2", "d3"},
		},
	}
}

func (that *treeGame) Actions(state string) []string {
	return that.order[state]
}

func (that *treeGame) Result(state, move string) string {
	next, ok := that.succs[state][move]
	if !ok {
		return state
	}

	return next
}

func (that *treeGame) Utility(state, player string) float64 {
	if player == maxPlayer {
		return that.utils[state]
	}

	return -that.utils[state]
}

func (that *treeGame) TerminalTest(state string) bool {
	return len(that.Actions(state)) == 0
}

func (that *treeGame) ToMove(state string) string {
	if strings.Contains("BCD", state) {
		return minPlayer
	}

	return maxPlayer
}

func (that *treeGame) Initial() string {
	return "A"
}

func (that *treeGame) Display(state string) string {
	return state
}
