// Package cli implements the interactive review session and text
// reports.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/at-ishikawa/flashpapers/internal/paper"
	"github.com/at-ishikawa/flashpapers/internal/review"
	"github.com/at-ishikawa/flashpapers/internal/srs"
	"github.com/at-ishikawa/flashpapers/internal/store"
)

var errEnd = errors.New("end")

// ReviewSession walks through the due papers one at a time, showing the
// summary after a prompt and recording the self-graded result.
type ReviewSession struct {
	store        *store.Store
	params       srs.Parameters
	queue        []paper.Paper
	reviewed     int
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
	now          func() time.Time
}

func NewReviewSession(paperStore *store.Store, params srs.Parameters, limit int) (*ReviewSession, error) {
	papers, err := paperStore.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("paperStore.LoadAll() > %w", err)
	}

	now := time.Now()
	return &ReviewSession{
		store:        paperStore,
		params:       params,
		queue:        review.Due(papers, now, limit),
		stdinReader:  bufio.NewReader(os.Stdin),
		stdoutWriter: os.Stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		now:          time.Now,
	}, nil
}

func (session *ReviewSession) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := session.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		fmt.Fprintln(session.stdoutWriter, "Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}

	fmt.Fprintf(session.stdoutWriter, "Reviewed %d papers.\n", session.reviewed)
	return nil
}

// Remaining returns the number of papers left in the queue.
func (session *ReviewSession) Remaining() int {
	return len(session.queue)
}

func (session *ReviewSession) Session(ctx context.Context) error {
	currentPaper := session.getNextPaper()
	if currentPaper == nil {
		fmt.Fprintln(session.stdoutWriter, "No more papers to review!")
		return errEnd
	}

	_, _ = session.bold.Fprintf(session.stdoutWriter, "\n%s\n", currentPaper.PaperTitle)
	_, _ = session.italic.Fprintf(session.stdoutWriter, "%s\n", currentPaper.Authors)
	fmt.Fprint(session.stdoutWriter, "\nPress Enter to show the summary... ")
	if _, err := session.stdinReader.ReadString('\n'); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}

	session.printSummary(*currentPaper)

	grade, err := session.askGrade()
	if err != nil {
		return err
	}
	if grade == 0 {
		// Skipped, keep the scheduling state untouched.
		session.removeCurrentPaper()
		return nil
	}

	state, err := srs.ApplyReview(currentPaper.SchedulingState(), grade, session.params, session.now())
	if err != nil {
		return fmt.Errorf("srs.ApplyReview() > %w", err)
	}
	currentPaper.SetSchedulingState(state)
	if err := session.store.Update(*currentPaper); err != nil {
		return fmt.Errorf("session.store.Update() > %w", err)
	}

	fmt.Fprintf(session.stdoutWriter, "Next review in %d days (%s).\n",
		state.IntervalDays, state.DueDate.Format("2006-01-02"))
	session.reviewed++
	session.removeCurrentPaper()
	return nil
}

func (session *ReviewSession) askGrade() (srs.Grade, error) {
	for {
		_, _ = session.bold.Fprint(session.stdoutWriter, "\nHow well did you recall it? [h]ard / [m]edium / [e]asy / [s]kip / [q]uit: ")
		answer, err := session.stdinReader.ReadString('\n')
		if err != nil {
			return 0, fmt.Errorf("error reading input: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "h", "hard":
			return srs.GradeHard, nil
		case "m", "medium":
			return srs.GradeMedium, nil
		case "e", "easy":
			return srs.GradeEasy, nil
		case "s", "skip":
			return 0, nil
		case "q", "quit":
			return 0, errEnd
		default:
			fmt.Fprintln(session.stdoutWriter, "Please answer h, m, e, s or q.")
		}
	}
}

func (session *ReviewSession) printSummary(p paper.Paper) {
	sections := []struct {
		title string
		body  string
	}{
		{"Background", p.BackgroundOfTheStudy},
		{"Objectives", p.ResearchObjectivesAndHypothesis},
		{"Methodology", p.Methodology},
		{"Results", p.ResultsAndFindings},
		{"Discussion", p.DiscussionAndInterpretation},
		{"Contributions", p.ContributionsToTheField},
		{"Significance", p.AchievementsAndSignificance},
		{"Notes", p.Notes},
	}
	fmt.Fprintln(session.stdoutWriter)
	for _, section := range sections {
		if section.body == "" {
			continue
		}
		_, _ = session.bold.Fprintf(session.stdoutWriter, "%s\n", section.title)
		fmt.Fprintf(session.stdoutWriter, "%s\n\n", section.body)
	}
}

func (session *ReviewSession) getNextPaper() *paper.Paper {
	if len(session.queue) == 0 {
		return nil
	}
	return &session.queue[0]
}

func (session *ReviewSession) removeCurrentPaper() {
	if len(session.queue) > 0 {
		session.queue = session.queue[1:]
	}
}
