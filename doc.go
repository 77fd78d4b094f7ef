// Copyright 2014 Alexandre Tuleu
// This file is part of go-arith.
//
// go-arith is free software: you can redistribute it and/or modify it
// under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-arith is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public
// License along with go-arith.  If not, see
// <http://www.gnu.org/licenses/>.

/*
Package arith provides a small arithmetic expression engine. It
parses expressions made of decimal numbers, the binary operators
+ - * /, unary + and -, and parentheses into an AST, and evaluates
that AST to a float64.

Basics

The simplest use is Evaluate, which compiles and evaluates a string
in one call. See the Evaluate example.

Compiling

Compile returns the tree without evaluating it. A compiled Node can
be evaluated any number of times with Eval, and prints itself fully
parenthesised, which is handy to check how precedence was applied.

Errors

Compile and Evaluate stop at the first error and return one of
*LexError, *UnexpectedTokenError, *UnclosedParenthesisError or
*TrailingInputError. Division by zero is not an error: it follows
IEEE-754 and yields an infinity or NaN.

*/
package arith
