// Package llr computes log-likelihood ratios for binary-input channels.
//
// The convention follows the usual soft-decision decoder input:
//
//	LLR(y) = ln( L(y | bit=0) / L(y | bit=1) )
//
// so a positive ratio favors bit 0. [Computer] evaluates the two
// conditional likelihoods of any channel and saturates the log-ratio
// when one of them underflows to zero. [AWGNComputer] is the linear
// closed form for BPSK over additive white Gaussian noise.
package llr
