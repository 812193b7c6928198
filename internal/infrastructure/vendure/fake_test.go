package vendure

import (
	"context"
	"encoding/json"
)

type recordedCall struct {
	Doc       string
	Variables map[string]any
}

// fakeChannel is a RequestFunc that answers from canned responses per operation
type fakeChannel struct {
	responses map[string]string
	errs      map[string]error
	calls     []recordedCall
}

func newFakeChannel() *fakeChannel {
	return &fakeChannel{
		responses: make(map[string]string),
		errs:      make(map[string]error),
	}
}

func (f *fakeChannel) respond(doc Document, data string) *fakeChannel {
	f.responses[doc.Name] = data
	return f
}

func (f *fakeChannel) fail(doc Document, err error) *fakeChannel {
	f.errs[doc.Name] = err
	return f
}

func (f *fakeChannel) do(ctx context.Context, doc Document, variables map[string]any) (json.RawMessage, error) {
	f.calls = append(f.calls, recordedCall{Doc: doc.Name, Variables: variables})
	if err := f.errs[doc.Name]; err != nil {
		return nil, err
	}
	if data, ok := f.responses[doc.Name]; ok {
		return json.RawMessage(data), nil
	}
	return json.RawMessage(`{}`), nil
}

func (f *fakeChannel) names() []string {
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c.Doc)
	}
	return out
}
