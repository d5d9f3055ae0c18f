/* Package main: gotrio, three notations over one continuation engine

gotrio reads lines in one of three notations, turns each into an expression
tree, and evaluates it against a shared variable environment and a shared
continuation stack.

Pi is postfix:

	3 4 +           # 7
	[1,2,3] "arr" =
	arr -->         # prints: 1 2 3

Rho is infix, with blocks given in braces or by one tab of indentation per
level:

	i = 0
	while i < 3
		i = i + 1

Rho also spells out the continuation algebra: `defer e` captures e as a
continuation, `a ; b` pushes two continuations so that a resumes first,
`resume` pops and runs the most recent one, `break` discards them all, and
`a | b` falls back to b when a yields unit.

Tau is Rho plus futures: `async op` makes a pending future and `await name`
resolves one, failing while it is still pending.

Lines starting with ':' are commands: :pi, :rho, :tau switch notation, :vars
lists bound variables, :help prints a summary, and :quit ends the session.
*/
package main
