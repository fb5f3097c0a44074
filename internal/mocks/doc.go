// Package mocks provides shared hand-written mocks for testing.
//
// Each mock has a function field per interface method. Set the field to
// customize behavior; leave it nil to get the default response and the
// shared Err value. Calls are recorded for verification:
//
//	svc := &mocks.MockNumerologyService{
//	    ProfileFn: func(ctx context.Context, req service.ProfileRequest) (*numerology.Profile, error) {
//	        return &numerology.Profile{Name: req.Name}, nil
//	    },
//	}
//
// When adding a new mock to this package, create a file named after the
// interface being mocked.
package mocks
