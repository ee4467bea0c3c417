// Package factorial holds the suite's warm-up exercise: factorial computed
// iteratively and recursively without the multiplication operator, products
// being formed by repeated addition. Both variants return identical results;
// they exist to compare the two control-flow shapes, not to be fast.
//
// Results are exact for n <= 20; beyond that uint64 overflows.
package factorial

// Iterative computes n! with a loop, forming each product n·(n-1)! by
// repeated addition.
func Iterative(n uint) uint64 {
	result := uint64(1)
	for i := uint(2); i <= n; i++ {
		temp := uint64(0)
		for j := uint(0); j < i; j++ {
			temp += result
		}
		result = temp
	}
	return result
}

// Recursive computes n! by recursion, forming each product by repeated
// addition. Stack depth grows linearly with n.
func Recursive(n uint) uint64 {
	if n <= 1 {
		return 1
	}
	smaller := Recursive(n - 1)
	result := uint64(0)
	for i := uint(0); i < n; i++ {
		result += smaller
	}
	return result
}
