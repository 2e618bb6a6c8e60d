/*
Package nodepath addresses nodes of an expression tree by the branches taken
from the root.

The canonical format is a dot-separated sequence that starts with `root` and
continues with `left` or `right` steps, e.g. `root.left.right.left`. A step may
carry a repeat count, so `root.left[2]` is the same as `root.left.left`.
The short forms `l` and `r` are accepted when parsing; String always emits the
long form without repeat counts.
*/
package nodepath
