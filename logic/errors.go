package logic

import (
	"context"
	"errors"
	"fmt"
)

// SkipReason explains why an item was not crossposted. It is an outcome, not a failure.
type SkipReason string

const (
	SkipNone              SkipReason = ""
	SkipExcludedCategory  SkipReason = "excluded by category"
	SkipOptOut            SkipReason = "explicit opt-out"
	SkipAlreadyPublished  SkipReason = "already published; remote edits unsupported"
	SkipNotPublished      SkipReason = "not published"
	SkipPasswordProtected SkipReason = "password-protected posts unsupported"
	SkipAutosave          SkipReason = "autosave"
	SkipPostType          SkipReason = "post type not crossposted"
	SkipNotConnected      SkipReason = "no connected account"
	SkipUnknownItem       SkipReason = "unknown item"
)

// RemoteError is a failed exchange with the pod: login, network, timeout or rejection.
// Retrying on the next trigger is safe.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote %s failed: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func IsRemoteError(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}

// IsTimeout tells if a remote failure was caused by the operation's deadline.
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}

// LocalStoreError is a failed read or write against the content store.
type LocalStoreError struct {
	Op  string
	Err error
}

func (e *LocalStoreError) Error() string {
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
}

func (e *LocalStoreError) Unwrap() error {
	return e.Err
}

func remoteErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var re *RemoteError
	if errors.As(err, &re) {
		return err
	}
	return &RemoteError{Op: op, Err: err}
}

func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &LocalStoreError{Op: op, Err: err}
}

var errNoAccount = errors.New("no account configured")
