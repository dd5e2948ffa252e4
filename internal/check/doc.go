/*
Package check decides whether a line of text is an arithmetic expression.

Grammar

	expr    --> expr "+" expr
	          | expr "*" expr
	          | "-" expr
	          | integer ;
	integer --> positive whole number ;

The grammar is not parsed. Every character of a line is classified on its own
(see package token) and the sequence of categories is checked against a small
set of rules:

+ A line must not start with '+' or '*'.
+ '+' and '*' must not follow one another.
+ A line must not contain a letter.

The first rule broken, by position, decides the outcome. Operands of the unary
'-' are never checked, nor is a trailing operator, nor is an integer checked to
hold only digits. An empty line is an expression.
*/
package check
