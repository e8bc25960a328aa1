package response

import "github.com/jinzhu/copier"

// copyInto copies same-named fields from src into dst. It only fails on nil or
// unaddressable arguments, which is a programming error.
func copyInto(dst, src any) {
	if err := copier.CopyWithOption(dst, src, copier.Option{DeepCopy: true}); err != nil {
		panic(err)
	}
}
