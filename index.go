package mmheap

import "math/bits"

//                       0
//           1                        2
//      3         4             5           6
//    7   8     9   10       11   12     13   14

func parent(i int) int      { return (i - 1) / 2 }
func grandparent(i int) int { return (i - 3) / 4 }

func child1(i int) int { return 2*i + 1 }
func child2(i int) int { return 2*i + 2 }

// The grandchildren of i are the contiguous run 4i+3 through 4i+6.
func grandchild1(i int) int { return 4*i + 3 }
func grandchild4(i int) int { return 4*i + 6 }

func hasParent(i int) bool      { return i > 0 }
func hasGrandparent(i int) bool { return i > 2 }

// isMinLevel reports whether index i sits on a min level. Levels
// alternate starting with the root on a min level, so i is on a min
// level exactly when the bit length of i+1 is odd.
func isMinLevel(i int) bool { return bits.Len(uint(i)+1)&1 == 1 }
