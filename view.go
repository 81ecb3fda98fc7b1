package goargs

import (
	"sync/atomic"
)

// View is a read-only handle on Results handed to a command Action. A View is live only while
// the action it was given to runs; afterwards every accessor fails with ErrInactiveView.
type View struct {
	results *Results
	live    *atomic.Bool
}

func newView(results *Results, live *atomic.Bool) *View {
	return &View{results: results, live: live}
}

// Active reports whether the view may still be read.
func (v *View) Active() bool {
	return v != nil && v.live.Load()
}

// Results returns the underlying Results.
func (v *View) Results() (*Results, error) {
	if !v.Active() {
		return nil, ErrInactiveView
	}

	return v.results, nil
}

func (v *View) Name() (string, error) {
	r, err := v.Results()
	if err != nil {
		return "", err
	}

	return r.Name(), nil
}

func (v *View) Rest() ([]string, error) {
	r, err := v.Results()
	if err != nil {
		return nil, err
	}

	return r.Rest(), nil
}

func (v *View) Get(name string) (any, error) {
	r, err := v.Results()
	if err != nil {
		return nil, err
	}

	return r.Get(name)
}

func (v *View) Flag(name string) (bool, error) {
	r, err := v.Results()
	if err != nil {
		return false, err
	}

	return r.Flag(name)
}

func (v *View) Option(name string) (string, error) {
	r, err := v.Results()
	if err != nil {
		return "", err
	}

	return r.Option(name)
}

func (v *View) MultiOption(name string) ([]string, error) {
	r, err := v.Results()
	if err != nil {
		return nil, err
	}

	return r.MultiOption(name)
}

func (v *View) WasParsed(name string) (bool, error) {
	r, err := v.Results()
	if err != nil {
		return false, err
	}

	return r.WasParsed(name)
}

func (v *View) Int(name string) (int, error) {
	r, err := v.Results()
	if err != nil {
		return 0, err
	}

	return r.Int(name)
}
