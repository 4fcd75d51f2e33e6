// Package output writes finished games as PGN or JSON records.
package output

import (
	"strconv"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// sevenTagRoster lists the tags every PGN record carries, in order.
var sevenTagRoster = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

// Record is one game ready to be written.
type Record struct {
	Event  string
	Site   string
	Date   string // "YYYY.MM.DD", or "" for unknown
	Round  int    // 0 for unknown
	White  string
	Black  string
	Result string // "1-0", "0-1", "1/2-1/2" or "*"

	// StartFEN is the starting position; empty means the initial position.
	StartFEN string

	// Moves holds the moves played, in SAN.
	Moves []string
}

// Tag is a PGN tag pair.
type Tag struct {
	Name  string
	Value string
}

// Tags returns the record's tags: the seven tag roster first, then SetUp
// and FEN for a non-initial start, then PlyCount.
func (r *Record) Tags() []Tag {
	values := map[string]string{
		"Event":  r.Event,
		"Site":   r.Site,
		"Date":   r.Date,
		"White":  r.White,
		"Black":  r.Black,
		"Result": r.Result,
	}
	if r.Round > 0 {
		values["Round"] = strconv.Itoa(r.Round)
	}
	if r.Result == "" {
		values["Result"] = "*"
	}

	tags := make([]Tag, 0, len(sevenTagRoster)+3)
	for _, name := range sevenTagRoster {
		value := values[name]
		if value == "" {
			value = "?"
		}
		tags = append(tags, Tag{Name: name, Value: value})
	}
	if r.hasCustomStart() {
		tags = append(tags, Tag{Name: "SetUp", Value: "1"}, Tag{Name: "FEN", Value: r.StartFEN})
	}
	tags = append(tags, Tag{Name: "PlyCount", Value: strconv.Itoa(len(r.Moves))})
	return tags
}

func (r *Record) hasCustomStart() bool {
	return r.StartFEN != "" && r.StartFEN != engine.InitialFEN
}

// startBoard returns the board the record's moves are played from.
func (r *Record) startBoard() (*chess.Board, error) {
	if !r.hasCustomStart() {
		return engine.NewInitialBoard(), nil
	}
	return engine.NewBoardFromFEN(r.StartFEN)
}

func (r *Record) result() string {
	if r.Result == "" {
		return "*"
	}
	return r.Result
}
