package aws

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go/aws/client"

	"awsls/internal/logging"
)

// Row is one normalized record, one cell per column of its lister
type Row []string

// ListOptions contains the inputs of a single listing call
type ListOptions struct {
	// Session is used to build the service client
	Session client.ConfigProvider

	// Region is the region to list resources in
	Region string

	// Progress, when set, is used by listers that describe items one by one
	Progress ProgressFunc
}

// Tracker reports progress over a known number of items
type Tracker interface {
	Increment()
	Done()
}

// ProgressFunc starts tracking progress over total items
type ProgressFunc func(description string, total int) Tracker

// Track returns a Tracker for total items, or a no-op Tracker when progress is disabled
func (o ListOptions) Track(description string, total int) Tracker {
	if o.Progress == nil || total == 0 {
		return nopTracker{}
	}
	return o.Progress(description, total)
}

type nopTracker struct{}

func (nopTracker) Increment() {}
func (nopTracker) Done()      {}

// Lister lists the resources of one AWS service in one region
type Lister interface {
	// ArgumentName returns the lowercase service key used on the command line
	ArgumentName() string

	// Label returns the human-readable resource kind, used in the section title
	Label() string

	// Columns returns the table headers. Every Row returned by List has the same length.
	Columns() []string

	// List drains every page of the service's listing API and returns normalized rows
	List(ctx context.Context, opts ListOptions) ([]Row, error)
}

// ItemStatus is the outcome of describing a single item
type ItemStatus int

const (
	// ItemListed means the item is included with its described fields
	ItemListed ItemStatus = iota
	// ItemSkipped means the item is left out of the listing entirely
	ItemSkipped
	// ItemDenied means the item is included with a marker row because its describe call was rejected
	ItemDenied
)

func (s ItemStatus) String() string {
	switch s {
	case ItemListed:
		return "listed"
	case ItemSkipped:
		return "skipped"
	case ItemDenied:
		return "denied"
	default:
		return "unknown"
	}
}

// ItemResult is the per-item outcome for listers that tolerate partial failure
type ItemResult struct {
	Name   string
	Status ItemStatus
	Row    Row
	// Err is the rejected describe call behind a skipped or denied item, if any
	Err error
}

// Rows collects the rows of listed and denied items, in order. Items that were
// skipped or denied because of a rejected call are logged with their cause.
func Rows(service string, results []ItemResult) []Row {
	rows := make([]Row, 0, len(results))
	for _, r := range results {
		switch r.Status {
		case ItemSkipped:
			if r.Err != nil {
				logging.ItemSkipped(service, r.Name, r.Err)
			}
			continue
		case ItemDenied:
			logging.ItemDenied(service, r.Name, r.Err)
		}
		rows = append(rows, r.Row)
	}
	return rows
}

// Registry maintains the closed set of supported listers
type Registry struct {
	listers map[string]Lister
}

// NewRegistry creates a new lister registry
func NewRegistry() *Registry {
	return &Registry{
		listers: make(map[string]Lister),
	}
}

// Register adds a lister to the registry
func (r *Registry) Register(l Lister) error {
	key := NormalizeKey(l.ArgumentName())
	if key == "" {
		return fmt.Errorf("lister %q has an empty argument name", l.Label())
	}
	if _, exists := r.listers[key]; exists {
		return fmt.Errorf("lister with argument name '%s' already registered", key)
	}
	r.listers[key] = l
	return nil
}

// Lookup resolves a service key, ignoring case and surrounding whitespace
func (r *Registry) Lookup(key string) (Lister, error) {
	normalized := NormalizeKey(key)
	if l, ok := r.listers[normalized]; ok {
		return l, nil
	}
	return nil, NewUnsupportedServiceError(normalized, r.Keys())
}

// Keys returns the sorted list of supported service keys
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.listers))
	for key := range r.listers {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// NormalizeKey trims and lowercases a service key
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

func joinKeys(keys []string) string {
	return strings.Join(keys, ", ")
}

// DefaultRegistry is populated by the listers package at startup
var DefaultRegistry = NewRegistry()
