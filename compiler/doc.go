/*

Process of compilation

Program Text ->
	tokenize ->
Token Stream (front) ->
	parse ->
Instruction List (ir) ->
	generate ->
C Translation Unit (back) + Transport Records (back)

The C form is linked into the kernel against ql_bridge.h. The records are
serialized to JSON and dispatched to the controller process, which is not
this package's job.

*/
package compiler
