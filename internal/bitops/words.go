package bitops

// AndWords performs dst[i] &= src[i] for i < len(dst).
// src must be at least as long as dst.
func AndWords[W Word](dst, src []W) {
	src = src[:len(dst)]
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] &= src[i]
		dst[i+1] &= src[i+1]
		dst[i+2] &= src[i+2]
		dst[i+3] &= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] &= src[i]
	}
}

// OrWords performs dst[i] |= src[i] for i < len(dst).
func OrWords[W Word](dst, src []W) {
	src = src[:len(dst)]
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] |= src[i]
		dst[i+1] |= src[i+1]
		dst[i+2] |= src[i+2]
		dst[i+3] |= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] |= src[i]
	}
}

// XorWords performs dst[i] ^= src[i] for i < len(dst).
func XorWords[W Word](dst, src []W) {
	src = src[:len(dst)]
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] ^= src[i]
		dst[i+1] ^= src[i+1]
		dst[i+2] ^= src[i+2]
		dst[i+3] ^= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] ^= src[i]
	}
}

// NotWords complements every word in place.
func NotWords[W Word](words []W) {
	i := 0
	for ; i+4 <= len(words); i += 4 {
		words[i] = ^words[i]
		words[i+1] = ^words[i+1]
		words[i+2] = ^words[i+2]
		words[i+3] = ^words[i+3]
	}
	for ; i < len(words); i++ {
		words[i] = ^words[i]
	}
}

// PopcountWords counts all set bits across words.
func PopcountWords[W Word](words []W) int {
	count := 0
	i := 0
	for ; i+4 <= len(words); i += 4 {
		count += OnesCount(words[i])
		count += OnesCount(words[i+1])
		count += OnesCount(words[i+2])
		count += OnesCount(words[i+3])
	}
	for ; i < len(words); i++ {
		count += OnesCount(words[i])
	}
	return count
}

// Fill sets every word to v.
func Fill[W Word](words []W, v W) {
	for i := range words {
		words[i] = v
	}
}
