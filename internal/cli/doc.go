// Package cli builds the command-line entry point shared by the cmd/lis-*
// binaries. Each binary binds one registered lis strategy; the contract is
// identical across all of them:
//
//	lis-<name> <N> [--data-dir DIR] [--show] [--verify] [--log-level LEVEL]
//
//   - Exactly one positional argument, the size identifier N ("10_000" is
//     accepted). Anything else is a usage error.
//   - The sequence is read from DIR/sequence_<N>.json (DIR defaults to
//     $LIS_DATA_DIR, then "data").
//   - stdout receives "LIS length = <k>" and, for strategies that print
//     their witness by default or with --show, "LIS = [...]".
//   - Data files are produced out of band by the project's generator,
//     "uv run python/generator.py <N>", which writes data/sequence_<N>.json.
//     A missing file is reported with that command; nothing is synthesized.
//   - Diagnostics go to stderr through logrus; every failure exits with
//     status 1.
package cli
