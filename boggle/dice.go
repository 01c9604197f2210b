package boggle

import "math/rand"

// The 16 standard Boggle dice (1992 revision).
var dice1992 = []string{
	"LRYTTE", "VTHRWE", "EGHWNE", "SEOTIS",
	"ANAEEG", "IDSYTT", "OATTOW", "MTOICU",
	"AFPKFS", "XLDERI", "HCPOAS", "ENSIEU",
	"YLDEVR", "ZNRNHL", "NMIQHU", "OBBAOJ",
}

// The 16 Boggle dice (1983 version).
var dice1983 = []string{
	"AACIOT", "ABILTY", "ABJMOQ", "ACDEMP",
	"ACELRS", "ADENVZ", "AHMORS", "BIFORX",
	"DENOSW", "DKNOTU", "EEFHIY", "EGINTV",
	"EGKLUY", "EHINPS", "ELPSTU", "GILRUW",
}

// rollBoard shuffles a dice set across the 16 cells and shows one face per
// die. The letter Q stands for the digraph QU during matching.
func rollBoard(rng *rand.Rand) [16]string {
	dice := dice1992
	if rng.Intn(2) == 0 {
		dice = dice1983
	}
	order := rng.Perm(16)

	var board [16]string
	for i, die := range order {
		face := rng.Intn(6)
		board[i] = dice[die][face : face+1]
	}
	return board
}
