package dispatcher

// laneHash is the deterministic, stable symbol hash specified for
// lane assignment: h := 0; for each byte b of symbol: h := h*31 + b.
// It is specified exactly (not left to a generic hash/maphash) because
// the binding must be reproducible across runs — tests assert a
// symbol always lands on the same lane. Ported from
// original_source/threading/SymbolThreadPool.cpp's
// assignSymbolToThread.
func laneHash(symbol string) uint64 {
	var h uint64
	for i := 0; i < len(symbol); i++ {
		h = h*31 + uint64(symbol[i])
	}
	return h
}

func laneFor(symbol string, numLanes int) int {
	return int(laneHash(symbol) % uint64(numLanes))
}
