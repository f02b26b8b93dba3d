// Package hashing provides position hashes and duplicate detection for
// replayed games.
package hashing

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Keys are derived from (kind, side, square) on demand so boards of any size
// hash without a precomputed table.
const (
	zobristSeed  uint64 = 0x2545f4914f6cdd1d
	blackToMove  uint64 = 0x9e3779b97f4a7c15
	weakMultiple uint64 = 31
)

// splitmix64 is the finaliser of the SplitMix64 generator.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

func pieceKey(kind chess.PieceKind, side chess.Side, c chess.Coord) uint64 {
	k := uint64(kind)<<56 | uint64(side)<<48 | uint64(uint32(c.X))<<24 | uint64(uint32(c.Y))
	return splitmix64(zobristSeed ^ k)
}

// GenerateZobristHash hashes the alive pieces and the side to move.
func GenerateZobristHash(board *chess.Board, toMove chess.Side) uint64 {
	var hash uint64
	for _, p := range board.Pieces() {
		if p.Alive {
			hash ^= pieceKey(p.Kind, p.Side, p.Pos)
		}
	}
	if toMove == chess.Black {
		hash ^= blackToMove
	}
	return hash
}

// WeakHash is a cheap order-independent checksum used to confirm Zobrist
// matches.
func WeakHash(board *chess.Board) uint64 {
	var hash uint64
	for _, p := range board.Pieces() {
		if !p.Alive {
			continue
		}
		square := uint64(p.Pos.Y*board.Width() + p.Pos.X)
		hash += (square + 1) * (uint64(p.Kind) + 1) * (uint64(p.Side)*weakMultiple + 1)
	}
	return hash
}

// Signature identifies where one game ended.
type Signature struct {
	Name     string // Game or script name
	Hash     uint64 // Zobrist hash of the final position
	WeakHash uint64
	Plies    int
}

// NewSignature builds the signature of a game that ended on board.
func NewSignature(name string, board *chess.Board, toMove chess.Side, plies int) Signature {
	return Signature{
		Name:     name,
		Hash:     GenerateZobristHash(board, toMove),
		WeakHash: WeakHash(board),
		Plies:    plies,
	}
}

// DuplicateDetector tracks seen final positions. It is not safe for
// concurrent use.
type DuplicateDetector struct {
	hashTable map[uint64][]Signature
	// Also require the same number of plies.
	matchPlies     bool
	duplicateCount int
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector(matchPlies bool) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:  make(map[uint64][]Signature),
		matchPlies: matchPlies,
	}
}

// CheckAndAdd reports whether sig matches a signature seen before and, if
// so, returns that earlier signature. Unmatched signatures are recorded.
func (d *DuplicateDetector) CheckAndAdd(sig Signature) (Signature, bool) {
	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return existing, true
		}
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return Signature{}, false
}

func (d *DuplicateDetector) signaturesMatch(a, b Signature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	return !d.matchPlies || a.Plies == b.Plies
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of distinct positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]Signature)
	d.duplicateCount = 0
}
