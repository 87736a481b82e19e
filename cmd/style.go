package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/paulhankin/poker"
	"github.com/pterm/pterm"

	"github.com/luca-patrignani/preflop-trainer/domain/drill"
	"github.com/luca-patrignani/preflop-trainer/domain/hands"
	"github.com/luca-patrignani/preflop-trainer/domain/presets"
	"github.com/luca-patrignani/preflop-trainer/domain/ranges"
)

func cardString(c poker.Card) string {
	switch c.Suit() {
	case poker.Diamond, poker.Heart:
		return pterm.LightRed(hands.CardLabel(c))
	}
	return pterm.LightWhite(hands.CardLabel(c))
}

func actionName(raise bool) string {
	if raise {
		return "Raise"
	}
	return "Fold"
}

func actionStyled(raise bool) string {
	if raise {
		return pterm.LightGreen(actionName(raise))
	}
	return pterm.LightRed(actionName(raise))
}

// accuracyPercent rounds the accuracy to a whole percentage.
func accuracyPercent(s drill.Score) int {
	return int(math.Round(s.Accuracy() * 100))
}

func comboShare(combos int) string {
	return fmt.Sprintf("%.1f%%", float64(combos)*100/hands.TotalCombos)
}

func positionSummary(store *ranges.Store, p hands.Position) string {
	cells, combos := store.Count(p)
	return fmt.Sprintf("%s: %d hands, %d combos (%s)", p, cells, combos, comboShare(combos))
}

func gridTable(g hands.Grid) (string, error) {
	data := pterm.TableData{}
	for _, row := range g {
		line := make([]string, len(row))
		for j, cell := range row {
			if cell.Selected {
				line[j] = pterm.BgGreen.Sprint(pterm.Black(cell.Hand))
			} else {
				line[j] = pterm.Gray(cell.Hand)
			}
		}
		data = append(data, line)
	}
	return pterm.DefaultTable.WithBoxed().WithData(data).Srender()
}

func printPosition(store *ranges.Store, p hands.Position) error {
	g, ok := store.Grid(p)
	if !ok {
		return fmt.Errorf("unknown position %s", p)
	}
	table, err := gridTable(g)
	if err != nil {
		return err
	}
	pterm.DefaultSection.Println(positionSummary(store, p))
	pterm.Println(table)
	return nil
}

func printEditorHeader(positions []hands.Position, current hands.Position, active string) {
	var parts []string
	for _, p := range positions {
		if p == current {
			parts = append(parts, pterm.BgLightBlue.Sprint(pterm.Black(" "+string(p)+" ")))
		} else {
			parts = append(parts, " "+string(p)+" ")
		}
	}
	pterm.Println("Positions: " + strings.Join(parts, " "))
	if active != "" {
		pterm.Info.Printfln("Active preset: %s", active)
	}
}

func handPanel(h drill.Hand, question, total int) string {
	cards, err := hands.Cards(h.Hand)
	body := h.Hand
	if err == nil {
		body = cardString(cards[0]) + "  " + cardString(cards[1]) + "   (" + h.Hand + ")"
	}
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	title := pterm.LightCyan(fmt.Sprintf("|%s| question %d/%d", h.Position, question, total))
	return pbox.WithTitle(title).WithTitleTopCenter().Sprint(body)
}

func scorePanel(s drill.Score) string {
	pct := accuracyPercent(s)
	accuracy := pterm.LightYellow(fmt.Sprintf("%d%%", pct))
	if s.Accuracy() >= 0.7 {
		accuracy = pterm.LightGreen(fmt.Sprintf("%d%%", pct))
	}
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	return pbox.WithTitle(pterm.LightGreen("|SCORE|")).WithTitleTopCenter().
		Sprintf("Score: %d / %d\nAccuracy: %s", s.Correct, s.Total, accuracy)
}

func mismatchTable(results []drill.Result) (string, error) {
	data := pterm.TableData{{"Hand", "Cards", "Position", "Expected", "Your answer"}}
	for _, r := range results {
		cards := ""
		if cs, err := hands.Cards(r.Hand); err == nil {
			cards = cardString(cs[0]) + " " + cardString(cs[1])
		}
		data = append(data, []string{r.Hand, cards, string(r.Position), actionStyled(r.Expected), actionStyled(r.Actual)})
	}
	return pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
}

func presetTable(list []presets.Preset, active string) (string, error) {
	data := pterm.TableData{{"", "ID", "Name", "Hands per position"}}
	for _, p := range list {
		marker := ""
		if p.ID == active {
			marker = pterm.LightGreen("*")
		}
		var counts []string
		for _, pos := range hands.Positions {
			if _, ok := p.Ranges[pos]; ok {
				counts = append(counts, fmt.Sprintf("%s %d", pos, len(p.Ranges.Selected(pos))))
			}
		}
		data = append(data, []string{marker, p.ID, p.Name, strings.Join(counts, ", ")})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}
