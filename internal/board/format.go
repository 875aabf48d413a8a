package board

var promoSuffix = map[PieceType]byte{Queen: 'q', Rook: 'r', Bishop: 'b', Knight: 'n'}

// FormatMove renders m as "<fromfile><fromrank><tofile><torank>" plus a
// trailing promotion letter when m promotes.
func FormatMove(m Move) string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string(promoSuffix[m.PromotionType()])
	}
	return s
}
