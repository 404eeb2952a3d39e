// SPDX-License-Identifier: MIT

// Package cooccur builds the two pair matrices of a character network.
//
// Given a frozen vocabulary of K names, N sentences and their sentiment
// scores s, Build computes
//
//	P  = N×K presence matrix, P[s,i] = 1 iff name i occurs in sentence s
//	C  = Pᵀ·P                               (co-occurrence counts)
//	S  = Pᵀ·diag(s)·P + align × C           (sentiment-adjusted co-occurrence)
//
// and returns the strict lower triangle of each. Every unordered pair {i,j}
// is stored once at (max, min); the diagonal (a name with itself) and the
// upper triangle are zero. Matrices.Pair reads a pair in either order.
//
// All products are delegated to package matrix. The builder never mutates a
// matrix after handing it out: each derived value is a new allocation.
package cooccur
