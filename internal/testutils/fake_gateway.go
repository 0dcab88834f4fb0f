package testutils

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/Kostiantyn78/ImageHub/internal/platform/cloud"
)

// StoreCall records one Store invocation on the fake gateway.
type StoreCall struct {
	Folder string
	Size   int
}

// TransformCall records one Transform invocation.
type TransformCall struct {
	SourceURL string
	Params    cloud.Params
}

// RetransformCall records one Retransform invocation.
type RetransformCall struct {
	CloudID string
	Params  cloud.Params
}

// FakeGateway is an in-memory cloud.Gateway for tests. Every call is
// recorded, and each method can be forced to fail.
type FakeGateway struct {
	mu sync.Mutex

	StoreCalls       []StoreCall
	TransformCalls   []TransformCall
	RetransformCalls []RetransformCall
	DeleteCalls      []string

	StoreErr       error
	TransformErr   error
	RetransformErr error
	DeleteErr      error

	seq int
}

var _ cloud.Gateway = (*FakeGateway)(nil)

func (f *FakeGateway) next() int {
	f.seq++
	return f.seq
}

func (f *FakeGateway) Store(_ context.Context, file io.Reader, folder string) (*cloud.Asset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.StoreErr != nil {
		return nil, f.StoreErr
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	n := f.next()
	f.StoreCalls = append(f.StoreCalls, StoreCall{Folder: folder, Size: len(data)})
	return &cloud.Asset{
		URL:     fmt.Sprintf("https://fake.example/%s/asset-%d", folder, n),
		CloudID: fmt.Sprintf("%s/asset-%d", folder, n),
	}, nil
}

func (f *FakeGateway) Transform(_ context.Context, sourceURL string, params cloud.Params) (*cloud.Asset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.TransformErr != nil {
		return nil, f.TransformErr
	}
	// Evaluate the chain like the real adapter does, so tests see the
	// same rejection of empty parameter sets.
	if _, err := params.Chain(); err != nil {
		return nil, err
	}
	n := f.next()
	f.TransformCalls = append(f.TransformCalls, TransformCall{SourceURL: sourceURL, Params: params})
	return &cloud.Asset{
		URL:     fmt.Sprintf("https://fake.example/transformed/asset-%d", n),
		CloudID: fmt.Sprintf("transformed/asset-%d", n),
	}, nil
}

func (f *FakeGateway) Retransform(_ context.Context, cloudID string, params cloud.Params) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.RetransformErr != nil {
		return "", f.RetransformErr
	}
	if _, err := params.Chain(); err != nil {
		return "", err
	}
	f.RetransformCalls = append(f.RetransformCalls, RetransformCall{CloudID: cloudID, Params: params})
	return fmt.Sprintf("https://fake.example/derived/%s", cloudID), nil
}

func (f *FakeGateway) Delete(_ context.Context, cloudID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	f.DeleteCalls = append(f.DeleteCalls, cloudID)
	return nil
}
