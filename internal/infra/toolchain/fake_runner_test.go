package toolchain

import (
	"context"
	"strings"
)

type call struct {
	dir  string
	name string
	args []string
}

type fakeRunner struct {
	calls   []call
	outputs map[string]string
	errs    map[string]error
}

func (f *fakeRunner) record(dir, name string, args []string) error {
	f.calls = append(f.calls, call{dir: dir, name: name, args: args})
	return f.errs[name]
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	return f.record(dir, name, args)
}

func (f *fakeRunner) RunOutput(_ context.Context, dir, name string, args ...string) ([]byte, error) {
	err := f.record(dir, name, args)
	return []byte(f.outputs[name]), err
}

func (f *fakeRunner) RunQuiet(_ context.Context, dir, name string, args ...string) error {
	return f.record(dir, name, args)
}

func (c call) String() string {
	return strings.TrimSpace(c.name + " " + strings.Join(c.args, " "))
}
