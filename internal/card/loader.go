package card

import (
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/CodingPenguin1/Splendor/internal/gem"
)

//go:embed data/*.csv
var dataFS embed.FS

var costColumns = [gem.NumColors]string{
	gem.Black: "cost_black",
	gem.Blue:  "cost_blue",
	gem.Green: "cost_green",
	gem.Red:   "cost_red",
	gem.White: "cost_white",
}

// Default returns the embedded standard definition set
func Default() (Definitions, error) {
	cards, err := dataFS.Open("data/cards.csv")
	if err != nil {
		return Definitions{}, err
	}
	defer cards.Close()

	nobles, err := dataFS.Open("data/nobles.csv")
	if err != nil {
		return Definitions{}, err
	}
	defer nobles.Close()

	return parse(cards, nobles)
}

// Load reads definitions from card and noble CSV files on disk. An empty
// path falls back to the embedded table for that file.
func Load(cardPath, noblePath string) (Definitions, error) {
	open := func(path, embedded string) (io.ReadCloser, error) {
		if path == "" {
			return dataFS.Open(embedded)
		}
		return os.Open(path)
	}

	cards, err := open(cardPath, "data/cards.csv")
	if err != nil {
		return Definitions{}, fmt.Errorf("failed to open card data: %w", err)
	}
	defer cards.Close()

	nobles, err := open(noblePath, "data/nobles.csv")
	if err != nil {
		return Definitions{}, fmt.Errorf("failed to open noble data: %w", err)
	}
	defer nobles.Close()

	return parse(cards, nobles)
}

func parse(cardsR, noblesR io.Reader) (Definitions, error) {
	cards, err := ParseCards(cardsR)
	if err != nil {
		return Definitions{}, fmt.Errorf("card data: %w", err)
	}
	nobles, err := ParseNobles(noblesR)
	if err != nil {
		return Definitions{}, fmt.Errorf("noble data: %w", err)
	}
	defs := Definitions{Cards: cards, Nobles: nobles}
	return defs, defs.Validate()
}

// ParseCards reads the card table. Columns are located by header name, so
// their order does not matter. IDs are assigned sequentially from 1.
func ParseCards(r io.Reader) ([]Card, error) {
	reader, cols, err := openTable(r, append([]string{"tier", "color", "points"}, costColumns[:]...))
	if err != nil {
		return nil, err
	}

	var cards []Card
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		tier, err := parseCount(row[cols["tier"]])
		if err != nil || !Tier(tier).Valid() {
			return nil, fmt.Errorf("line %d: invalid tier %q", line, row[cols["tier"]])
		}
		color, err := gem.ParseColor(row[cols["color"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		points, err := parseCount(row[cols["points"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: points: %w", line, err)
		}
		cost, err := parseCost(row, cols)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		cards = append(cards, Card{
			ID:     ID(len(cards) + 1),
			Tier:   Tier(tier),
			Color:  color,
			Points: points,
			Cost:   cost,
		})
	}
	return cards, nil
}

// ParseNobles reads the noble table, which has only cost columns
func ParseNobles(r io.Reader) ([]Noble, error) {
	reader, cols, err := openTable(r, costColumns[:])
	if err != nil {
		return nil, err
	}

	var nobles []Noble
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		cost, err := parseCost(row, cols)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		nobles = append(nobles, Noble{ID: NobleID(len(nobles) + 1), Cost: cost})
	}
	return nobles, nil
}

// WriteCards writes cards in the same tabular format ParseCards reads
func WriteCards(w io.Writer, cards []Card) error {
	cw := csv.NewWriter(w)
	header := append([]string{"tier", "color", "points"}, costColumns[:]...)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, c := range cards {
		row := []string{
			strconv.Itoa(int(c.Tier)),
			c.Color.String(),
			strconv.Itoa(c.Points),
		}
		for _, color := range gem.Colors {
			row = append(row, strconv.Itoa(c.Cost[color]))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func openTable(r io.Reader, required []string) (*csv.Reader, map[string]int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, nil, fmt.Errorf("missing column %q", name)
		}
	}
	return reader, cols, nil
}

func parseCost(row []string, cols map[string]int) (gem.Cost, error) {
	var cost gem.Cost
	for _, color := range gem.Colors {
		n, err := parseCount(row[cols[costColumns[color]]])
		if err != nil {
			return gem.Cost{}, fmt.Errorf("%s: %w", costColumns[color], err)
		}
		cost[color] = n
	}
	return cost, nil
}

func parseCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative value %d", n)
	}
	return n, nil
}
