// Package billing turns a usage vector into a cost breakdown for the
// subscription pricing page. All arithmetic is exact decimal arithmetic so
// that ceiling and rounding never depend on binary floating-point error.
package billing
