// SPDX-License-Identifier: MIT

// Package segment cleans raw narrative text and splits it into sentences.
//
// The character-network core treats sentence segmentation as an external
// collaborator behind the Segmenter interface. PunktSegmenter is the default
// (the English Punkt model from github.com/neurosnap/sentences); RuleSegmenter
// is a dependency-free alternative (terminal punctuation plus an abbreviation
// list). Any implementation that preserves order and returns a finite slice is
// substitutable.
package segment
