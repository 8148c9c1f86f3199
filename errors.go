/*
 * errors.go, part of goTPS.
 *
 * Copyright 2026 Raul Mera <rmeraa{at}academicosDOTutaDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package tps

// CError is the concrete error type for the tps package. It fulfills the
// Error interface.
type CError struct {
	msg  string
	deco []string
}

// NewCError returns a CError with the given message, decorated with the
// name of the caller function.
func NewCError(msg string, caller string) CError {
	return CError{msg, []string{caller}}
}

func (err CError) Error() string { return err.msg }

// Decorate adds new information to the error and returns the current
// decoration slice.
func (err CError) Decorate(deco string) []string {
	//The receiver is not a pointer, but err.deco is a slice, hence a
	//pointer itself, so the decoration is kept.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// ErrDecorate asserts that err implements Error and decorates it with the
// caller's name before returning it. If given a plain error, it wraps it
// in a CError first.
func ErrDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	err2, ok := err.(Error)
	if !ok {
		return CError{err.Error(), []string{caller}}
	}
	err2.Decorate(caller)
	return err2
}

// Common error messages.
const (
	ErrNilData          = "goTPS: Nil data given"
	ErrInconsistentData = "goTPS: Inconsistent data length"
	ErrOutOfRange       = "goTPS: Index out of range"
)
