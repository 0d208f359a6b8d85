package quiztennis

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/quiz-tennis/internal/core"
	"github.com/vovakirdan/quiz-tennis/internal/tennis"
)

// Visual characters for rendering
const (
	RacketChar   = '█'
	NearLineChar = '═'
	FarLineChar  = '─'
	NetChar      = '╌'
	CenterChar   = '·'
	BarFull      = '█'
	BarEmpty     = '░'
)

// Layout
const (
	panelWidth = 26
	minWidth   = 44
	minHeight  = 18
)

// line is one row of a dialog.
type line struct {
	text  string
	color core.Color
}

// Render draws the court, the score panel and whatever overlay the current
// phase needs.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()

	if g.err != nil {
		lines := []line{{"CANNOT START MATCH", core.ColorBrightRed}, {"", core.ColorDefault}}
		for _, l := range wrap(g.err.Error(), max(w-6, 10)) {
			lines = append(lines, line{l, core.ColorDefault})
		}
		lines = append(lines, line{"", core.ColorDefault}, line{"Q to quit", core.ColorGray})
		drawDialog(dst, dst.Bounds(), -1, lines, core.ColorBrightRed)
		return
	}
	if g.match == nil {
		return
	}
	if w < minWidth || h < minHeight {
		dst.DrawTextCentered(dst.Bounds(), h/2-1, "Terminal too small", core.ColorBrightYellow)
		dst.DrawTextCentered(dst.Bounds(), h/2+1, fmt.Sprintf("Need at least %dx%d", minWidth, minHeight), core.ColorGray)
		return
	}

	courtW := w
	showPanel := w >= minWidth+panelWidth
	if showPanel {
		courtW = w - panelWidth
	}
	court := core.NewRect(0, 0, courtW, h)
	proj := tennis.ProjectorForScreen(courtW, h)
	s := g.snap

	drawCourt(dst, proj)
	playerColor := core.ColorBrightCyan
	if s.Player.Locked {
		playerColor = core.ColorRed
	}
	reach := g.match.Config().RacketReach
	drawRacket(dst, proj, s.Opponent.Position, 1, reach, core.ColorOrange)
	drawRacket(dst, proj, s.Player.Position, 0, reach, playerColor)
	drawBall(dst, proj, s.Ball)

	if showPanel {
		g.drawPanel(dst, core.NewRect(courtW, 0, panelWidth, h))
	} else {
		g.drawHUD(dst)
	}

	switch s.Phase {
	case tennis.PhaseTitle:
		g.drawTitle(dst, court)
	case tennis.PhaseQuestionTime:
		drawQuestion(dst, court, s.Gate)
	case tennis.PhasePointScored:
		drawPointBanner(dst, court, s)
	case tennis.PhaseMatchOver:
		g.drawMatchOver(dst, court)
	case tennis.PhaseServing, tennis.PhaseCPUReturn, tennis.PhaseQuestionCheck, tennis.PhaseRally:
	}

	if g.paused {
		drawDialog(dst, court, -1, []line{
			{"PAUSED", core.ColorBrightYellow},
			{"", core.ColorDefault},
			{"P to resume", core.ColorGray},
		}, core.ColorBrightYellow)
	}
}

// drawCourt draws the sidelines, baselines, net and center line in
// perspective.
func drawCourt(dst *core.Screen, proj tennis.Projector) {
	top, bottom := int(math.Ceil(proj.FarY)), int(proj.NearY)
	span := proj.NearY - proj.FarY
	netY := core.Round(proj.Project(tennis.CourtCenter, tennis.NetDepth).Y)
	centerX := core.Round(proj.CenterX)

	for y := top; y <= bottom; y++ {
		depth := (proj.NearY - float64(y)) / span
		left := core.Round(proj.Project(tennis.CourtMin, depth).X)
		right := core.Round(proj.Project(tennis.CourtMax, depth).X)
		dst.SetColored(left, y, '/', core.ColorGreen)
		dst.SetColored(right, y, '\\', core.ColorGreen)
		if y != top && y != bottom && y != netY {
			dst.SetColored(centerX, y, CenterChar, core.ColorGray)
		}
	}

	hline := func(depth float64, r rune, c core.Color) {
		left := proj.Project(tennis.CourtMin, depth)
		right := proj.Project(tennis.CourtMax, depth)
		dst.DrawHLine(core.Round(left.X)+1, core.Round(right.X)-1, core.Round(left.Y), r, c)
	}
	hline(0, NearLineChar, core.ColorGreen)
	hline(1, FarLineChar, core.ColorGreen)
	hline(tennis.NetDepth, NetChar, core.ColorBrightWhite)
}

func drawRacket(dst *core.Screen, proj tennis.Projector, pos, depth, reach float64, c core.Color) {
	left := proj.Project(pos-reach, depth)
	right := proj.Project(pos+reach, depth)
	dst.DrawHLine(core.Round(left.X), core.Round(right.X), core.Round(left.Y), RacketChar, c)
}

func drawBall(dst *core.Screen, proj tennis.Projector, b tennis.Ball) {
	p := proj.Project(b.Lateral, b.Depth)
	dst.SetColored(core.Round(p.X), core.Round(p.Y), ballGlyph(p.Scale), core.ColorBrightYellow)
}

// ballGlyph picks a smaller glyph as the ball moves away.
func ballGlyph(scale float64) rune {
	switch {
	case scale > 0.8:
		return '●'
	case scale > 0.55:
		return '•'
	default:
		return '·'
	}
}

func sideName(s tennis.Side) string {
	if s == tennis.SidePlayer {
		return "YOU"
	}
	return "CPU"
}

// gameStatus describes the current game: deuce, advantage or tiebreak.
func gameStatus(sc tennis.Score) string {
	switch {
	case sc.Over:
		return ""
	case sc.Tiebreak:
		return "Tiebreak"
	case sc.Deuce:
		return "Deuce"
	case sc.Points[tennis.SidePlayer] == tennis.PointAdvantage:
		return "Advantage YOU"
	case sc.Points[tennis.SideOpponent] == tennis.PointAdvantage:
		return "Advantage CPU"
	}
	return ""
}

func (g *Game) drawPanel(dst *core.Screen, r core.Rect) {
	s := g.snap
	sc := s.Score
	dst.DrawBox(r, core.ColorGray)
	x := r.X + 2
	row := func(y int, text string, c core.Color) {
		dst.DrawTextColored(x, y, text, c)
	}

	row(1, "QUIZ TENNIS", core.ColorBrightYellow)
	row(3, "         YOU   CPU", core.ColorGray)
	row(4, fmt.Sprintf("Sets     %-5d %d", sc.Sets[tennis.SidePlayer], sc.Sets[tennis.SideOpponent]), core.ColorBrightWhite)
	row(5, fmt.Sprintf("Games    %-5d %d", sc.Games[tennis.SidePlayer], sc.Games[tennis.SideOpponent]), core.ColorBrightWhite)
	row(6, fmt.Sprintf("Points   %-5s %s", sc.PointLabel(tennis.SidePlayer), sc.PointLabel(tennis.SideOpponent)), core.ColorBrightWhite)
	if !sc.Over {
		row(7, "Serving  "+sideName(sc.Serving), core.ColorCyan)
	}
	row(8, gameStatus(sc), core.ColorBrightYellow)

	if len(sc.History) > 0 {
		row(10, "Sets: "+setsText(sc.History), core.ColorWhite)
	}
	row(12, fmt.Sprintf("Questions %d/%d", s.Stats.Correct, s.Stats.QuestionsAsked), core.ColorWhite)
	row(13, fmt.Sprintf("Best rally %d", s.Stats.LongestRally), core.ColorWhite)
	row(14, "Time "+formatClock(s.Elapsed), core.ColorWhite)
	row(15, fmt.Sprintf("Score %d", LeaderboardScore(s)), core.ColorBrightGreen)

	help := []string{"←/→ A/D  move", "1-4      answer", "SPACE    serve", "P pause  R restart", "B menu   Q quit"}
	for i, h := range help {
		y := r.Bottom() - 1 - len(help) + i
		if y > 15 {
			row(y, h, core.ColorGray)
		}
	}
}

// drawHUD is the one-line score used when the panel does not fit.
func (g *Game) drawHUD(dst *core.Screen) {
	sc := g.snap.Score
	text := fmt.Sprintf("YOU %d %d %s  CPU %d %d %s  %s",
		sc.Sets[tennis.SidePlayer], sc.Games[tennis.SidePlayer], sc.PointLabel(tennis.SidePlayer),
		sc.Sets[tennis.SideOpponent], sc.Games[tennis.SideOpponent], sc.PointLabel(tennis.SideOpponent),
		gameStatus(sc))
	dst.DrawTextColored(1, 0, text, core.ColorBrightWhite)
}

func (g *Game) drawTitle(dst *core.Screen, area core.Rect) {
	length := "Best of three sets"
	if g.mode == ModeQuick {
		length = "One set"
	}
	cat := g.cfg.Questions.Category
	if cat == "" {
		cat = "all categories"
	}
	width := min(area.W-6, 50)
	lines := []line{
		{"Q U I Z   T E N N I S", core.ColorBrightYellow},
		{"", core.ColorDefault},
	}
	for _, l := range wrap("When the ball crosses the net a question may lock your racket. Answer right to play on.", width) {
		lines = append(lines, line{l, core.ColorWhite})
	}
	lines = append(lines,
		line{"", core.ColorDefault},
		line{length + " · " + cat, core.ColorCyan},
		line{"", core.ColorDefault},
		line{"SPACE or ENTER to serve", core.ColorBrightGreen},
		line{"←/→ move · 1-4 answer · Q quit", core.ColorGray},
	)
	drawDialog(dst, area, -1, lines, core.ColorBrightYellow)
}

func drawQuestion(dst *core.Screen, area core.Rect, gate tennis.GateSnapshot) {
	width := max(min(area.W-6, 60), 20)
	q := gate.Question

	timer := fmt.Sprintf("%4.1fs", gate.Remaining)
	header := "[" + q.Category + "]"
	pad := max(width-utf8.RuneCountInString(header)-utf8.RuneCountInString(timer), 1)
	lines := []line{{header + strings.Repeat(" ", pad) + timer, core.ColorBrightYellow}, {"", core.ColorDefault}}

	for _, l := range wrap(q.Prompt, width) {
		lines = append(lines, line{l, core.ColorBrightWhite})
	}
	lines = append(lines, line{"", core.ColorDefault})
	for i, choice := range q.Choices {
		for j, l := range wrap(choice, width-3) {
			prefix := "   "
			if j == 0 {
				prefix = fmt.Sprintf("%d) ", i+1)
			}
			lines = append(lines, line{prefix + l, core.ColorCyan})
		}
	}
	lines = append(lines, line{"", core.ColorDefault})

	frac := 0.0
	if gate.Limit > 0 {
		frac = core.ClampF(gate.Remaining/gate.Limit, 0, 1)
	}
	filled := core.Round(frac * float64(width))
	bar := strings.Repeat(string(BarFull), filled) + strings.Repeat(string(BarEmpty), width-filled)
	lines = append(lines, line{bar, timerColor(frac)})

	drawDialog(dst, area, 1, lines, core.ColorBrightYellow)
}

func timerColor(frac float64) core.Color {
	switch {
	case frac > 0.5:
		return core.ColorBrightGreen
	case frac > 0.25:
		return core.ColorYellow
	default:
		return core.ColorBrightRed
	}
}

func drawPointBanner(dst *core.Screen, area core.Rect, s tennis.Snapshot) {
	color := core.ColorBrightGreen
	if s.LastPoint.Side == tennis.SideOpponent {
		color = core.ColorBrightRed
	}
	lines := []line{
		{"POINT " + sideName(s.LastPoint.Side), color},
		{s.LastPoint.Reason.String(), core.ColorWhite},
	}
	if r := s.Gate.Result; r == tennis.ResultWrong || r == tennis.ResultTimeout {
		for _, l := range wrap("Answer: "+s.Gate.Question.CorrectText(), max(min(area.W-8, 50), 10)) {
			lines = append(lines, line{l, core.ColorBrightYellow})
		}
	}
	if status := gameStatus(s.Score); status != "" {
		lines = append(lines, line{status, core.ColorCyan})
	}
	drawDialog(dst, area, -1, lines, color)
}

func (g *Game) drawMatchOver(dst *core.Screen, area core.Rect) {
	s := g.snap
	title, color := "YOU WIN THE MATCH!", core.ColorBrightGreen
	if s.Score.Winner == tennis.SideOpponent {
		title, color = "CPU WINS THE MATCH", core.ColorBrightRed
	}
	lines := []line{
		{title, color},
		{"", core.ColorDefault},
		{"Sets " + setsText(s.Score.History), core.ColorBrightWhite},
		{fmt.Sprintf("Points won %d-%d", s.Stats.PointsWon[tennis.SidePlayer], s.Stats.PointsWon[tennis.SideOpponent]), core.ColorWhite},
		{fmt.Sprintf("Questions %d/%d correct", s.Stats.Correct, s.Stats.QuestionsAsked), core.ColorWhite},
		{fmt.Sprintf("Score %d", LeaderboardScore(s)), core.ColorBrightYellow},
		{"", core.ColorDefault},
		{"R restart · B menu · Q quit", core.ColorGray},
	}
	drawDialog(dst, area, -1, lines, color)
}

// drawDialog draws lines in a bordered box inside area. top < 0 centers the
// box vertically.
func drawDialog(dst *core.Screen, area core.Rect, top int, lines []line, border core.Color) {
	textW := 0
	for _, l := range lines {
		textW = max(textW, utf8.RuneCountInString(l.text))
	}
	w := min(textW+4, area.W)
	h := min(len(lines)+2, area.H)
	box := core.CenteredRect(area, w, h)
	if top >= 0 {
		box.Y = area.Y + top
	}

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, border)
	for i, l := range lines {
		y := box.Y + 1 + i
		if y >= box.Bottom()-1 {
			break
		}
		dst.DrawTextCentered(box, y, l.text, l.color)
	}
}

// wrap word-wraps text to width cells.
func wrap(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	return strings.Split(ansi.Wrap(text, width, ""), "\n")
}

func formatClock(seconds float64) string {
	d := time.Duration(seconds * float64(time.Second)).Round(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
