package replay

import "github.com/samber/oops"

// Error codes for replay failures.
const (
	CodeEmptyReplay        = "EMPTY_REPLAY"
	CodeUnsupportedVersion = "UNSUPPORTED_REPLAY_VERSION"
	CodeReplayIO           = "REPLAY_IO"
)

func errEmpty() error {
	return oops.Code(CodeEmptyReplay).Errorf("no frames to save")
}

func errVersion(path, version string) error {
	return oops.Code(CodeUnsupportedVersion).
		With("path", path).
		With("version", version).
		Errorf("replay version %q is not supported (want %q)", version, FormatVersion)
}

func errIO(op, path string, err error) error {
	return oops.Code(CodeReplayIO).
		With("op", op).
		With("path", path).
		Wrapf(err, "failed to %s replay", op)
}
