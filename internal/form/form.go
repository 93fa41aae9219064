package form

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"hlsmill/internal/media"
)

// Port is the conversational surface a form runs against. Ask prints a
// prompt and returns one trimmed answer line; Say prints a message.
type Port interface {
	Ask(prompt string) (string, error)
	Say(message string)
}

// ConsolePort adapts an io.Reader/io.Writer pair (normally stdin/stdout)
// into a Port.
type ConsolePort struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsolePort(in io.Reader, out io.Writer) *ConsolePort {
	return &ConsolePort{in: bufio.NewReader(in), out: out}
}

func (p *ConsolePort) Ask(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (p *ConsolePort) Say(message string) {
	fmt.Fprintln(p.out, message)
}

// Form runs interactive metadata collection over a Port.
type Form struct {
	port  Port
	title cases.Caser
}

func New(port Port) *Form {
	return &Form{port: port, title: cases.Title(language.English)}
}

// Movie walks the operator through every movie field and returns the
// collected record. Structural validation happens when the record is saved.
func (f *Form) Movie() (*media.Movie, error) {
	f.port.Say("Enter the movie details.")

	movie := &media.Movie{}
	var err error
	if movie.Title, err = f.askRequired("Title: "); err != nil {
		return nil, err
	}
	if movie.Description, err = f.askRequired("Description: "); err != nil {
		return nil, err
	}
	if movie.Genres, err = f.askGenres(); err != nil {
		return nil, err
	}
	if movie.Cast, err = f.askList("Cast (comma separated): "); err != nil {
		return nil, err
	}
	if movie.ReleaseYear, err = f.askInt("Release year: "); err != nil {
		return nil, err
	}
	if movie.Duration, err = f.askInt("Duration in seconds: "); err != nil {
		return nil, err
	}
	if movie.ForKids, err = f.askBool("Suitable for kids? [y/N]: "); err != nil {
		return nil, err
	}
	return movie, nil
}

// Series collects the series record including its season and episode tree.
// Seasons are offered one at a time until the operator declines.
func (f *Form) Series() (*media.Series, error) {
	f.port.Say("Enter the series details.")

	series := &media.Series{}
	var err error
	if series.Title, err = f.askRequired("Title: "); err != nil {
		return nil, err
	}
	if series.Description, err = f.askRequired("Description: "); err != nil {
		return nil, err
	}
	if series.Genres, err = f.askGenres(); err != nil {
		return nil, err
	}
	if series.Cast, err = f.askList("Cast (comma separated): "); err != nil {
		return nil, err
	}
	if series.ReleaseYear, err = f.askInt("Release year: "); err != nil {
		return nil, err
	}
	if series.ForKids, err = f.askBool("Suitable for kids? [y/N]: "); err != nil {
		return nil, err
	}

	for number := 1; ; number++ {
		more, err := f.askBool(fmt.Sprintf("Add season %d? [y/N]: ", number))
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
		season, err := f.season(number)
		if err != nil {
			return nil, err
		}
		series.Seasons = append(series.Seasons, *season)
	}
	return series, nil
}

func (f *Form) season(number int) (*media.Season, error) {
	season := &media.Season{Number: number}
	count, err := f.askInt(fmt.Sprintf("How many episodes does season %d have? ", number))
	if err != nil {
		return nil, err
	}
	if count < 1 {
		return nil, fmt.Errorf("season %d: episode count must be positive", number)
	}
	for episode := 1; episode <= count; episode++ {
		f.port.Say(fmt.Sprintf("Season %d, episode %d:", number, episode))
		entry := media.Episode{Number: episode}
		if entry.Title, err = f.askRequired("Title: "); err != nil {
			return nil, err
		}
		if entry.Description, err = f.askRequired("Description: "); err != nil {
			return nil, err
		}
		if entry.Duration, err = f.askInt("Duration in seconds: "); err != nil {
			return nil, err
		}
		season.Episodes = append(season.Episodes, entry)
	}
	return season, nil
}

func (f *Form) askRequired(prompt string) (string, error) {
	answer, err := f.port.Ask(prompt)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return "", fmt.Errorf("%sanswer must not be empty", prompt)
	}
	return answer, nil
}

func (f *Form) askList(prompt string) ([]string, error) {
	answer, err := f.port.Ask(prompt)
	if err != nil {
		return nil, err
	}
	return splitList(answer), nil
}

// askGenres title-cases each entry so the catalog stores one spelling per
// genre regardless of how the operator typed it.
func (f *Form) askGenres() ([]string, error) {
	entries, err := f.askList("Genres (comma separated): ")
	if err != nil {
		return nil, err
	}
	for i, entry := range entries {
		entries[i] = f.title.String(entry)
	}
	return entries, nil
}

func (f *Form) askInt(prompt string) (int, error) {
	answer, err := f.port.Ask(prompt)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("%sexpected a number, got %q", prompt, answer)
	}
	return value, nil
}

func (f *Form) askBool(prompt string) (bool, error) {
	answer, err := f.port.Ask(prompt)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func splitList(answer string) []string {
	if answer == "" {
		return nil
	}
	var entries []string
	for _, part := range strings.Split(answer, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			entries = append(entries, part)
		}
	}
	return entries
}
