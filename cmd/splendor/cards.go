package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/CodingPenguin1/Splendor/internal/card"
	"github.com/CodingPenguin1/Splendor/internal/fileutil"
)

type CardsCmd struct {
	Tier   int    `help:"Only print this tier (1-3)"`
	Nobles bool   `name:"nobles-only" help:"Print the noble tiles instead of the cards"`
	Out    string `short:"o" type:"path" help:"Write to this file instead of stdout"`
}

func (c *CardsCmd) Run(globals *Globals) error {
	cfg, err := globals.config()
	if err != nil {
		return err
	}
	defs, err := definitions(cfg)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if c.Nobles {
		for _, n := range defs.Nobles {
			fmt.Fprintln(&buf, n)
		}
	} else {
		cards := defs.Cards
		if c.Tier != 0 {
			tier := card.Tier(c.Tier)
			if c.Tier < 0 || !tier.Valid() {
				return fmt.Errorf("tier must be 1 to %d, got %d", card.NumTiers, c.Tier)
			}
			cards = defs.Tier(tier)
		}
		if err := card.WriteCards(&buf, cards); err != nil {
			return err
		}
	}

	if c.Out == "" {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}
	return fileutil.WriteFileAtomic(c.Out, buf.Bytes(), 0o644)
}
