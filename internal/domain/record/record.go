package record

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"sgf_keeper/internal/domain/sgf"
)

// Record is a stored game record with metadata read from its first tree.
type Record struct {
	ID             string    `json:"id" bson:"_id"`
	Name           string    `json:"name" bson:"name"`
	PlayerBlack    string    `json:"player_black" bson:"player_black"`
	PlayerWhite    string    `json:"player_white" bson:"player_white"`
	Date           string    `json:"date,omitempty" bson:"date,omitempty"`
	Result         string    `json:"result,omitempty" bson:"result,omitempty"`
	BoardSize      int       `json:"board_size,omitempty" bson:"board_size,omitempty"`
	Komi           float64   `json:"komi,omitempty" bson:"komi,omitempty"`
	TreeCount      int       `json:"tree_count" bson:"tree_count"`
	NodeCount      int       `json:"node_count" bson:"node_count"`
	VariationCount int       `json:"variation_count" bson:"variation_count"`
	SGF            string    `json:"sgf,omitempty" bson:"sgf"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}

type ListResponse struct {
	Records []Record `json:"records"`
	Total   int64    `json:"total"`
	Page    int      `json:"page"`
}

type CanonicalResponse struct {
	SGF       string `json:"sgf"`
	TreeCount int    `json:"tree_count"`
}

// Summarize fills the metadata fields of a record from c. Values are taken
// as written; nothing is validated.
func Summarize(c *sgf.Collection) Record {
	rec := Record{TreeCount: len(c.Trees)}
	for _, t := range c.Trees {
		t.Walk(func(n *sgf.Node, _ int) bool {
			rec.NodeCount++
			if kids := len(n.Children()); kids > 1 {
				rec.VariationCount += kids - 1
			}
			return true
		})
	}
	if len(c.Trees) == 0 {
		return rec
	}

	root := c.Trees[0].Root
	rec.PlayerBlack = text(root, "PB")
	rec.PlayerWhite = text(root, "PW")
	rec.Date = text(root, "DT")
	rec.Result = text(root, "RE")
	rec.BoardSize = boardSize(text(root, "SZ"))
	if km, err := strconv.ParseFloat(strings.TrimSpace(text(root, "KM")), 64); err == nil {
		rec.Komi = km
	}

	switch {
	case text(root, "GN") != "":
		rec.Name = text(root, "GN")
	case rec.PlayerBlack != "" || rec.PlayerWhite != "":
		rec.Name = fmt.Sprintf("%s vs %s", rec.PlayerBlack, rec.PlayerWhite)
	default:
		rec.Name = "untitled"
	}
	return rec
}

func text(n *sgf.Node, id string) string {
	v, ok := n.Get(id)
	if !ok {
		return ""
	}
	return v.String()
}

// boardSize reads "19" or the column count of "19:13".
func boardSize(sz string) int {
	if i := strings.IndexByte(sz, ':'); i >= 0 {
		sz = sz[:i]
	}
	n, err := strconv.Atoi(strings.TrimSpace(sz))
	if err != nil {
		return 0
	}
	return n
}
