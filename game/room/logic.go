package room

import (
	"github.com/Dewaeq/tetris-server/common/utils"
)

// PieceCount 七种方块 0-6
const PieceCount = 7

// NewBag 生成一个bag 即0..6的随机排列
// 洗牌从尾部往前 每一步和前面(含当前)随机一个位置交换
func NewBag() []int {
	bag := make([]int, PieceCount)
	for i := range bag {
		bag[i] = i
	}
	for i := len(bag) - 1; i > 0; i-- {
		j := utils.Rand(i + 1)
		bag[i], bag[j] = bag[j], bag[i]
	}
	return bag
}
