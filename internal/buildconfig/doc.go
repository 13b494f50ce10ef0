// Package buildconfig assembles the [models.BuildConfiguration] consumed by the
// external contract toolchain from an explicit environment mapping.
//
// The package never reads process state on its own: callers obtain the
// mapping with [LoadEnvironment] (process environment plus an optional
// dotenv file) and pass it to [Assemble]. Assembly is permissive, mirroring
// the toolchain config it replaces: a missing variable yields an empty
// placeholder rather than an error. [Missing] and [Validate] report absent
// variables for callers that want to warn or fail fast.
package buildconfig
