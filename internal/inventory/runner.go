// Package inventory resolves a service key to its lister, runs it against a fresh
// session, renders the result, and turns every failure into a message and exit code.
package inventory

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	awslib "awsls/internal/aws"
	"awsls/internal/logging"
	"awsls/internal/output"
)

// Request is one invocation of the inventory
type Request struct {
	Service string
	Region  string
	Profile string
}

// Runner dispatches requests. The zero value is not usable; use NewRunner.
type Runner struct {
	Registry   *awslib.Registry
	NewSession awslib.SessionFunc
	Progress   awslib.ProgressFunc
	Stdout     io.Writer
	Stderr     io.Writer
}

// NewRunner creates a Runner over the default registry and the SDK session provider
func NewRunner() *Runner {
	return &Runner{
		Registry:   awslib.DefaultRegistry,
		NewSession: awslib.NewSession,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	}
}

// Run lists the resources of one service in one region and returns the process exit code
func (r *Runner) Run(ctx context.Context, req Request) int {
	region := strings.TrimSpace(req.Region)
	return r.finish(ctx, region, r.list(ctx, req, region))
}

// Regions renders the regions enabled for the account and returns the process exit code
func (r *Runner) Regions(ctx context.Context, profile, region string) int {
	region = strings.TrimSpace(region)
	return r.finish(ctx, region, r.regions(ctx, profile, region))
}

func (r *Runner) list(ctx context.Context, req Request, region string) error {
	// Unknown keys fail before any session exists
	lister, err := r.Registry.Lookup(req.Service)
	if err != nil {
		return err
	}

	sess, err := r.NewSession(req.Profile, region)
	if err != nil {
		return err
	}
	if region == "" {
		region = awslib.SessionRegion(sess)
	}

	service := lister.ArgumentName()
	logging.ListStart(service, region, req.Profile)
	start := time.Now()

	rows, err := lister.List(ctx, awslib.ListOptions{
		Session:  sess,
		Region:   region,
		Progress: r.Progress,
	})
	if err != nil {
		return err
	}

	columns := lister.Columns()
	for _, row := range rows {
		if len(row) != len(columns) {
			return fmt.Errorf("%s lister returned a row with %d cells, want %d", service, len(row), len(columns))
		}
	}

	logging.ListComplete(service, region, len(rows), time.Since(start))

	return output.Render(r.Stdout, Title(lister.Label(), region), Strings(rows), columns)
}

func (r *Runner) regions(ctx context.Context, profile, region string) error {
	sess, err := r.NewSession(profile, region)
	if err != nil {
		return err
	}
	if region == "" {
		region = awslib.SessionRegion(sess)
	}

	rows, err := awslib.ListRegions(ctx, sess, region)
	if err != nil {
		return err
	}

	return output.Render(r.Stdout, "Enabled Regions", Strings(rows), awslib.RegionColumns)
}

// finish is the single place where failures are classified, reported and mapped to exit codes
func (r *Runner) finish(ctx context.Context, region string, err error) int {
	if err == nil {
		return awslib.ExitOK
	}

	// A cancelled context wins over whatever the interrupted call reported
	if ctxErr := ctx.Err(); ctxErr != nil {
		err = fmt.Errorf("%w: %w", ctxErr, err)
	}

	classified := awslib.Classify(err, region)
	logging.Debug("Invocation failed", map[string]interface{}{
		"kind":  string(classified.Kind),
		"cause": err.Error(),
	})
	fmt.Fprintf(r.Stderr, "Error: %s\n", classified.Message)
	return classified.ExitCode()
}

// ExitError carries the exit code of a run that already reported its own failure
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// Exit converts a run's exit code to a command result
func Exit(code int) error {
	if code == awslib.ExitOK {
		return nil
	}
	return &ExitError{Code: code}
}

// Title is the section title printed above a table
func Title(label, region string) string {
	return fmt.Sprintf("%s in %s", label, region)
}

// Strings converts rows to the renderer's input type
func Strings(rows []awslib.Row) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = row
	}
	return out
}
