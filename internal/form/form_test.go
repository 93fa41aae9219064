package form

import (
	"errors"
	"strings"
	"testing"
)

type scriptedPort struct {
	answers []string
	next    int
	prompts []string
	said    []string
}

func (p *scriptedPort) Ask(prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if p.next >= len(p.answers) {
		return "", errors.New("script exhausted")
	}
	answer := p.answers[p.next]
	p.next++
	return answer, nil
}

func (p *scriptedPort) Say(message string) {
	p.said = append(p.said, message)
}

func TestMovieCollectsAndNormalizes(t *testing.T) {
	port := &scriptedPort{answers: []string{
		"Blade Runner",
		"A replicant hunt in future Los Angeles.",
		"sci-fi, neo noir",
		"Harrison Ford, Rutger Hauer",
		"1982",
		"7020",
		"n",
	}}

	movie, err := New(port).Movie()
	if err != nil {
		t.Fatalf("Movie: %v", err)
	}
	if movie.Title != "Blade Runner" {
		t.Fatalf("unexpected title %q", movie.Title)
	}
	if got, want := strings.Join(movie.Genres, "|"), "Sci-Fi|Neo Noir"; got != want {
		t.Fatalf("genres = %q, want %q", got, want)
	}
	if got, want := strings.Join(movie.Cast, "|"), "Harrison Ford|Rutger Hauer"; got != want {
		t.Fatalf("cast = %q, want %q", got, want)
	}
	if movie.ReleaseYear != 1982 || movie.Duration != 7020 {
		t.Fatalf("unexpected numbers: year=%d duration=%d", movie.ReleaseYear, movie.Duration)
	}
	if movie.ForKids {
		t.Fatal("expected ForKids=false for answer n")
	}
}

func TestMovieRejectsEmptyTitle(t *testing.T) {
	port := &scriptedPort{answers: []string{""}}
	if _, err := New(port).Movie(); err == nil {
		t.Fatal("expected error for empty title")
	}
}

func TestMovieRejectsNonNumericYear(t *testing.T) {
	port := &scriptedPort{answers: []string{
		"Title", "Description", "Drama", "Someone", "nineteen eighty-two",
	}}
	_, err := New(port).Movie()
	if err == nil || !strings.Contains(err.Error(), "expected a number") {
		t.Fatalf("expected number parse error, got %v", err)
	}
}

func TestSeriesCollectsSeasonTree(t *testing.T) {
	port := &scriptedPort{answers: []string{
		"Severance",
		"Work-life separation, surgically.",
		"thriller",
		"Adam Scott",
		"2022",
		"n",
		// season 1 with two episodes
		"y",
		"2",
		"Good News About Hell", "Mark leads a team.", "3420",
		"Half Loop", "Helly resists.", "3180",
		// stop
		"n",
	}}

	series, err := New(port).Series()
	if err != nil {
		t.Fatalf("Series: %v", err)
	}
	if len(series.Seasons) != 1 {
		t.Fatalf("expected 1 season, got %d", len(series.Seasons))
	}
	season := series.Seasons[0]
	if season.Number != 1 || len(season.Episodes) != 2 {
		t.Fatalf("unexpected season shape: number=%d episodes=%d", season.Number, len(season.Episodes))
	}
	if season.Episodes[1].Number != 2 || season.Episodes[1].Title != "Half Loop" {
		t.Fatalf("unexpected second episode: %+v", season.Episodes[1])
	}
}

func TestSeriesAllowsZeroSeasonsAtCollectionTime(t *testing.T) {
	port := &scriptedPort{answers: []string{
		"Title", "Description", "Drama", "Someone", "2020", "n", "n",
	}}
	series, err := New(port).Series()
	if err != nil {
		t.Fatalf("Series: %v", err)
	}
	if len(series.Seasons) != 0 {
		t.Fatalf("expected no seasons, got %d", len(series.Seasons))
	}
}

func TestSeasonRejectsNonPositiveEpisodeCount(t *testing.T) {
	port := &scriptedPort{answers: []string{
		"Title", "Description", "Drama", "Someone", "2020", "n",
		"y", "0",
	}}
	if _, err := New(port).Series(); err == nil {
		t.Fatal("expected error for zero episode count")
	}
}

func TestConsolePortTrimsAnswers(t *testing.T) {
	var out strings.Builder
	port := NewConsolePort(strings.NewReader("  answer \n"), &out)
	answer, err := port.Ask("Prompt: ")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if answer != "answer" {
		t.Fatalf("answer = %q", answer)
	}
	if !strings.Contains(out.String(), "Prompt: ") {
		t.Fatalf("prompt not written: %q", out.String())
	}
}
