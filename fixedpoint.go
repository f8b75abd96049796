package gsm0610

// add computes var1+var2 with saturation at the int16 bounds.
func add(var1, var2 int16) int16 {
	sum := int32(var1) + int32(var2)
	if sum > 32767 {
		return 32767
	}
	if sum < -32768 {
		return -32768
	}
	return int16(sum)
}

// sub computes var1-var2 with saturation at the int16 bounds.
func sub(var1, var2 int16) int16 {
	diff := int32(var1) - int32(var2)
	if diff > 32767 {
		return 32767
	}
	if diff < -32768 {
		return -32768
	}
	return int16(diff)
}

// mult returns (var1*var2)>>15, except the aliased case mult(-32768,-32768)
// which returns 32767 rather than overflowing.
func mult(var1, var2 int16) int16 {
	if var1 == -32768 && var2 == -32768 {
		return 32767
	}
	return int16((int32(var1) * int32(var2)) >> 15)
}

// mult_r is mult with round-to-nearest (ties up) before the shift.
func mult_r(var1, var2 int16) int16 {
	if var1 == -32768 && var2 == -32768 {
		return 32767
	}
	return int16((int32(var1)*int32(var2) + 16384) >> 15)
}

// s_abs returns |var1|, saturating s_abs(-32768) to 32767.
func s_abs(var1 int16) int16 {
	if var1 == -32768 {
		return 32767
	}
	if var1 < 0 {
		return -var1
	}
	return var1
}

// div performs the fractional division floor(var1*32768/var2), requiring
// 0 <= var1 <= var2 and var2 > 0. div(var1, var1) saturates to 32767.
func div(var1, var2 int16) int16 {
	if var1 == var2 {
		return 32767
	}
	result := (int32(var1) << 15) / int32(var2)
	if result > 32767 {
		return 32767
	}
	if result < 0 {
		return 0
	}
	return int16(result)
}

// L_add is the int32 saturating addition.
func L_add(lvar1, lvar2 int32) int32 {
	sum := int64(lvar1) + int64(lvar2)
	if sum > 2147483647 {
		return 2147483647
	}
	if sum < -2147483648 {
		return -2147483648
	}
	return int32(sum)
}

// L_sub is the int32 saturating subtraction.
func L_sub(lvar1, lvar2 int32) int32 {
	diff := int64(lvar1) - int64(lvar2)
	if diff > 2147483647 {
		return 2147483647
	}
	if diff < -2147483648 {
		return -2147483648
	}
	return int32(diff)
}

// L_mult is (var1*var2)<<1 as an int32. The caller must not pass
// (-32768,-32768); the algorithm never requires it.
func L_mult(var1, var2 int16) int32 {
	return (int32(var1) * int32(var2)) << 1
}

// clampI16 saturates an int32 into the int16 range without the rounding
// or aliasing rules add/sub apply; used where a value has already been
// computed at 32-bit precision and just needs narrowing.
func clampI16(v int32) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}

// asl is an arithmetic shift left by n bits (n may be negative, in which
// case it shifts right instead), saturating to 0 rather than wrapping
// once n reaches the word width.
func asl(a, n int16) int16 {
	if n < 0 {
		return asr(a, -n)
	}
	if n >= 16 {
		return 0
	}
	return int16(int32(a) << uint(n))
}

// asr is an arithmetic shift right by n bits (n may be negative, in
// which case it shifts left instead), sign-extending once n reaches the
// word width.
func asr(a, n int16) int16 {
	if n < 0 {
		return asl(a, -n)
	}
	if n >= 16 {
		if a < 0 {
			return -1
		}
		return 0
	}
	return int16(int32(a) >> uint(n))
}

// norm returns the number of left shifts needed to bring the nonzero
// int32 L_var1 into [-2^31,-2^30] (negative) or [2^30, 2^31-1] (positive).
// The negative band's upper bound -2^30 is itself already normalized,
// which is why this works on the actual numeric value rather than a
// bitwise complement.
func norm(lvar1 int32) int16 {
	if lvar1 == 0 {
		return 0
	}
	v := int64(lvar1)
	var shifts int16
	if v > 0 {
		for v < 1073741824 {
			v <<= 1
			shifts++
		}
	} else {
		for v > -1073741824 {
			v <<= 1
			shifts++
		}
	}
	return shifts
}
