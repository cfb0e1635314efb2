// Package reconcile compares the Zenodo record of every published
// PREreview full review with the record the review should have.
//
// Reviews are processed one at a time in the order PREreview returns them.
// A failure while processing one review is logged and counted, and the run
// moves on to the next review.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/prereview/zsync/internal/prereview"
	"github.com/prereview/zsync/internal/recorddiff"
	"github.com/prereview/zsync/internal/zenodo"
	"go.uber.org/zap"
)

// ErrNoDOI indicates a review that has no DOI, and so no Zenodo record.
var ErrNoDOI = errors.New("no DOI")

// ReviewSource is the part of the PREreview client the pipeline uses.
type ReviewSource interface {
	FullReviews(ctx context.Context) ([]prereview.FullReview, error)
	Persona(ctx context.Context, uuid string) (prereview.Persona, error)
	FullReviewURL(reviewID string) *url.URL
}

// RecordSource is the part of the Zenodo client the pipeline uses.
type RecordSource interface {
	Record(ctx context.Context, id int) (zenodo.Record, error)
}

// Verdict is the outcome of processing one review.
type Verdict struct {
	ReviewID      string
	PreprintID    string
	RecordID      int // zero when the review has no DOI
	ChangesNeeded bool
	Patch         recorddiff.Patch

	// Reason explains a verdict reached without a diff, e.g. ErrNoDOI.
	Reason error
}

// Report summarises a run.
type Report struct {
	Total         int
	Skipped       int
	ChangesNeeded []string // review UUIDs, in processing order
}

// Pipeline reconciles reviews against records.
type Pipeline struct {
	reviews ReviewSource
	records RecordSource
	out     io.Writer
	logger  *zap.Logger
}

// New creates a pipeline. Diffs of records needing changes are written to out.
func New(reviews ReviewSource, records RecordSource, out io.Writer, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	if out == nil {
		out = io.Discard
	}
	return &Pipeline{
		reviews: reviews,
		records: records,
		out:     out,
		logger:  logger,
	}
}

// Run processes every published full review. Only a failure to list the
// reviews is returned as an error.
func (p *Pipeline) Run(ctx context.Context) (Report, error) {
	reviews, err := p.reviews.FullReviews(ctx)
	if err != nil {
		return Report{}, err
	}
	p.logger.Debug("Found full reviews", zap.Int("number", len(reviews)))

	report := Report{Total: len(reviews), ChangesNeeded: []string{}}
	for _, review := range reviews {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		verdict, err := p.ProcessReview(ctx, review)
		if err != nil {
			p.logger.Warn("Unable to process full review",
				zap.String("preprintId", review.Preprint.Handle.Identifier),
				zap.String("reviewId", review.UUID),
				zap.Error(err))
			report.Skipped++
			continue
		}
		if verdict.ChangesNeeded {
			report.ChangesNeeded = append(report.ChangesNeeded, verdict.ReviewID)
		}
	}

	if len(report.ChangesNeeded) == 0 {
		p.logger.Info("🎉 Nothing to do")
	} else {
		p.logger.Info("👀 Changes needed", zap.Strings("fullReviews", report.ChangesNeeded))
	}
	return report, nil
}

// ProcessReview compares one review's record with its expected state and
// writes the diff when they differ. A review without a DOI needs changes
// and is not looked up in Zenodo.
func (p *Pipeline) ProcessReview(ctx context.Context, review prereview.FullReview) (Verdict, error) {
	verdict := Verdict{
		ReviewID:   review.UUID,
		PreprintID: review.Preprint.Handle.Identifier,
	}
	fields := []zap.Field{
		zap.String("preprintId", verdict.PreprintID),
		zap.String("reviewId", verdict.ReviewID),
	}

	if review.DOI == nil {
		p.logger.Warn("No DOI", append(fields, zap.Error(ErrNoDOI))...)
		verdict.ChangesNeeded = true
		verdict.Reason = ErrNoDOI
		p.logger.Warn("Skipped processing full review", append(fields, zap.Bool("changesNeeded", true))...)
		return verdict, nil
	}

	recordID, err := zenodo.RecordIDFromDOI(*review.DOI)
	if err != nil {
		p.logger.Warn("Unable to turn DOI into Zenodo record ID", append(fields, zap.String("doi", *review.DOI), zap.Error(err))...)
		return verdict, fmt.Errorf("review %s: %w", review.UUID, err)
	}
	verdict.RecordID = recordID

	record, err := p.records.Record(ctx, recordID)
	if err != nil {
		return verdict, fmt.Errorf("review %s: %w", review.UUID, err)
	}

	personas, err := p.personas(ctx, review)
	if err != nil {
		return verdict, fmt.Errorf("review %s: %w", review.UUID, err)
	}

	expected := ExpectedRecord(review, record, personas)
	patch, err := recorddiff.Compare(
		record.Links.Latest,
		p.reviews.FullReviewURL(review.UUID).String(),
		record,
		expected,
	)
	if err != nil {
		return verdict, fmt.Errorf("review %s: %w", review.UUID, err)
	}

	verdict.Patch = patch
	verdict.ChangesNeeded = !patch.Empty()
	if verdict.ChangesNeeded {
		if _, err := io.WriteString(p.out, patch.String()); err != nil {
			return verdict, fmt.Errorf("writing diff: %w", err)
		}
	}

	p.logger.Debug("Processed full review",
		append(fields, zap.Int("recordId", recordID), zap.Bool("changesNeeded", verdict.ChangesNeeded))...)
	return verdict, nil
}

// personas fetches the review's authors one after another.
func (p *Pipeline) personas(ctx context.Context, review prereview.FullReview) ([]prereview.Persona, error) {
	personas := make([]prereview.Persona, 0, len(review.Authors))
	for _, author := range review.Authors {
		persona, err := p.reviews.Persona(ctx, author.UUID)
		if err != nil {
			return nil, err
		}
		personas = append(personas, persona)
	}
	return personas, nil
}
