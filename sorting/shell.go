// SPDX-License-Identifier: MIT

package sorting

// Shell sorts xs in place with gaps n/2, n/4, ..., 1.
func Shell(xs []int32) {
	n := len(xs)
	for gap := n / 2; gap > 0; gap /= 2 {
		for i := gap; i < n; i++ {
			v := xs[i]
			j := i
			for ; j >= gap && xs[j-gap] > v; j -= gap {
				xs[j] = xs[j-gap]
			}
			xs[j] = v
		}
	}
}
