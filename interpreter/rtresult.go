/*
 * Fx
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package interpreter

/*
RTResult is the composite return value of every AST visit: exactly one
of value / error / a pending func return / a pending loop continue /
a pending loop break is active at a time. Threading this record
through the tree walker lets deeply nested visitors signal returns and
loop control without native exceptions.
*/
type RTResult struct {
	Value              Value
	Err                error
	FuncReturnValue    Value
	LoopShouldContinue bool
	LoopShouldBreak    bool
}

/*
NewRTResult creates an empty (reset) result.
*/
func NewRTResult() *RTResult {
	return &RTResult{}
}

func (r *RTResult) reset() {
	r.Value = nil
	r.Err = nil
	r.FuncReturnValue = nil
	r.LoopShouldContinue = false
	r.LoopShouldBreak = false
}

/*
Register absorbs a subcall's non-value outcome (error, return,
continue, break) and returns its value. The caller must check
ShouldReturn() immediately afterwards and propagate if it is set.
*/
func (r *RTResult) Register(sub *RTResult) Value {
	r.Err = sub.Err
	r.FuncReturnValue = sub.FuncReturnValue
	r.LoopShouldContinue = sub.LoopShouldContinue
	r.LoopShouldBreak = sub.LoopShouldBreak
	return sub.Value
}

/*
Success sets the value outcome, clearing any other pending outcome.
*/
func (r *RTResult) Success(v Value) *RTResult {
	r.reset()
	r.Value = v
	return r
}

/*
Failure sets the error outcome.
*/
func (r *RTResult) Failure(err error) *RTResult {
	r.reset()
	r.Err = err
	return r
}

/*
SuccessReturn sets the pending function-return outcome.
*/
func (r *RTResult) SuccessReturn(v Value) *RTResult {
	r.reset()
	r.FuncReturnValue = v
	return r
}

/*
SuccessContinue sets the pending loop-continue outcome.
*/
func (r *RTResult) SuccessContinue() *RTResult {
	r.reset()
	r.LoopShouldContinue = true
	return r
}

/*
SuccessBreak sets the pending loop-break outcome.
*/
func (r *RTResult) SuccessBreak() *RTResult {
	r.reset()
	r.LoopShouldBreak = true
	return r
}

/*
ShouldReturn reports whether any non-value outcome is pending, in
which case the caller must stop evaluating and propagate this result.
*/
func (r *RTResult) ShouldReturn() bool {
	return r.Err != nil || r.FuncReturnValue != nil || r.LoopShouldContinue || r.LoopShouldBreak
}
