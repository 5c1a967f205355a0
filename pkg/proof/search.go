// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package proof

import (
	log "github.com/sirupsen/logrus"

	"github.com/matteo-psnt/proof-generator/pkg/logic"
	"github.com/matteo-psnt/proof-generator/pkg/rewrite"
	"github.com/matteo-psnt/proof-generator/pkg/rules"
	"github.com/matteo-psnt/proof-generator/pkg/util/collection/hash"
)

// How many expansions between progress reports (and cancellation checks).
const progressInterval = 100

// Options bound a proof search.
type Options struct {
	// MaxDepth bounds how many rewrite steps deep the search will expand.
	MaxDepth uint
	// MaxStates bounds how many states the search will explore in total.
	MaxStates uint
	// MaxExpressionLength bounds the size of any intermediate expression.
	// Without this, the expansive rules (e.g. idempotence in reverse) would
	// keep the frontier growing forever.
	MaxExpressionLength uint
	// Rules in force, in the order they are attempted.
	Rules []*rules.Rule
	// Progress, when set, is invoked every 100 expansions.
	Progress func(statesExplored uint, currentDepth uint)
	// Cancel, when set, aborts the search once closed.  It is polled at the
	// same boundary as Progress.
	Cancel <-chan struct{}
}

// DefaultOptions returns the standard search budgets together with the full
// rule catalogue.
func DefaultOptions() Options {
	return Options{
		MaxDepth:            15,
		MaxStates:           10000,
		MaxExpressionLength: 15,
		Rules:               rules.All(),
	}
}

// Result describes the outcome of a proof search, distinguishing found from
// not-found from cancelled, with the accumulated statistics in every case.
type Result struct {
	// Found indicates a proof was discovered; Proof then holds it.
	Found bool
	// Cancelled indicates the search observed its cancellation signal.
	Cancelled bool
	// Proof carrying the start into the goal, when found.
	Proof *Proof
	// Deepest level actually expanded or, when found, the depth of the
	// matching node.
	SearchDepth uint
	// Number of states dequeued and examined.
	TotalStatesExplored uint
}

// node is one state in the breadth-first search.  Parent pointers always
// refer to nodes created earlier, hence the chain is acyclic and is walked
// exactly once during reconstruction.
type node struct {
	expr   logic.Expr
	rule   *rules.Rule
	parent *node
	depth  uint
}

// Find searches breadth-first for a sequence of rewrites carrying the start
// expression into the goal.  Breadth-first order with unit edge costs and
// hash-based deduplication means the proof returned uses the minimum number
// of rule applications reachable within the budgets.
func Find(start logic.Expr, goal logic.Expr, opts Options) Result {
	// A structural match needs no rewriting at all.
	if logic.Equal(start, goal) {
		return Result{
			Found: true,
			Proof: &Proof{start, goal, []Step{{start, nil}}},
		}
	}
	//
	var (
		visited  = hash.NewSet[hash.StringKey](opts.MaxStates)
		root     = &node{start, nil, nil, 0}
		queue    = []*node{root}
		explored = uint(0)
		deepest  = uint(0)
	)
	//
	visited.Insert(hash.NewStringKey(start.Hash()))
	//
	for len(queue) > 0 {
		// Give up once the state budget is exhausted.
		if explored >= opts.MaxStates {
			return Result{SearchDepth: deepest, TotalStatesExplored: explored}
		}
		//
		current := queue[0]
		queue = queue[1:]
		explored++
		//
		if explored%progressInterval == 0 {
			log.Debugf("explored %d states (depth %d, frontier %d)", explored, current.depth, len(queue))
			//
			if opts.Progress != nil {
				opts.Progress(explored, current.depth)
			}
			//
			if cancelled(opts.Cancel) {
				return Result{Cancelled: true, SearchDepth: deepest, TotalStatesExplored: explored}
			}
		}
		// Depth-limited nodes stay unexpanded, but the queue keeps draining.
		if current.depth >= opts.MaxDepth {
			continue
		}
		//
		deepest = max(deepest, current.depth)
		//
		for _, rw := range rewrite.All(current.expr, opts.Rules, opts.MaxExpressionLength) {
			if visited.Insert(hash.NewStringKey(rw.Expr.Hash())) {
				// Already enqueued via a path at least as short.
				continue
			}
			//
			child := &node{rw.Expr, rw.Rule, current, current.depth + 1}
			//
			if logic.Equal(rw.Expr, goal) {
				return Result{
					Found:               true,
					Proof:               reconstruct(start, goal, child),
					SearchDepth:         child.depth,
					TotalStatesExplored: explored,
				}
			}
			//
			queue = append(queue, child)
		}
	}
	// Frontier exhausted without a match.
	return Result{SearchDepth: deepest, TotalStatesExplored: explored}
}

// Check whether the cancellation signal has been raised.
func cancelled(cancel <-chan struct{}) bool {
	if cancel == nil {
		return false
	}
	//
	select {
	case <-cancel:
		return true
	default:
		return false
	}
}

// Reconstruct the proof by walking parent pointers from the goal node back
// to the root.
func reconstruct(start logic.Expr, goal logic.Expr, last *node) *Proof {
	var steps []Step
	//
	for n := last; n != nil; n = n.parent {
		steps = append(steps, Step{n.expr, n.rule})
	}
	// Reverse into proof order.
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	//
	return &Proof{start, goal, steps}
}
