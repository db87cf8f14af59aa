/*
Package rpn evaluates arithmetic expressions written in Reverse Polish
Notation, one line at a time.

Lines

	line     --> token* ;
	token    --> "(" | ")" | number | operator ;
	number   --> ( "~"* | "$" )? literal ;
	literal  --> integer | real ;
	integer  --> ( "+" | "-" )? DIGIT+ ;
	real     --> any float literal containing "." or "e" or "E" ;
	operator --> "+" | "-" | "*" | "/" | "//" | "%" | "**" ;

Tokens are separated by whitespace. A number prefixed with "~" is negated
once per marker, "$" marks a number as positive and may appear only once.
Parentheses group a sub-expression that must reduce to exactly one value:

	( 3 4 + ) 2 *  =>  14
	~3 5 +         =>  2

Numbers are integers or reals. Reals without a fractional part produced by a
literal, "/" or "**" become integers. "//" and "%" reject reals, even those
with an integral value.
*/
package rpn
