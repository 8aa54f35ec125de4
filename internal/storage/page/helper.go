package page

import (
	"strconv"
	"strings"

	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// Join renders page numbers separated by single spaces.
func Join(ids []util.PageID) string {
	var sb strings.Builder
	for i, id := range ids {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatUint(uint64(id), 10))
	}
	return sb.String()
}
