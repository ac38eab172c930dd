// Package dmc models discrete memoryless channels as row-stochastic
// transition matrices and builds them by quantizing continuous-output
// channel models.
//
// A DMC with N inputs and M output cells holds an N×M matrix W where
// W[i][j] = P(output cell j | input i). [New] wraps an explicit matrix,
// [FromChannel] integrates a conditional density across output cells
// with fixed-order Gauss-Legendre quadrature. A DMC is itself a
// channel model over symbol indices, so quantized channels plug back
// into everything that consumes likelihoods.
package dmc
