package fileops

import (
	"github.com/llehouerou/vidpeek/internal/media"
	"github.com/llehouerou/vidpeek/internal/preview"
)

// MenuFilter is the general per-file action policy: favorite or
// unfavorite depending on the current mark, and local-only actions only
// when the file is downloaded.
type MenuFilter struct{}

// Filter implements preview.MenuPolicy.
func (MenuFilter) Filter(menu preview.Menu, item media.Item, _ media.Account) {
	if item.Favorite {
		menu.Hide(preview.ActionFavorite)
	} else {
		menu.Hide(preview.ActionUnfavorite)
	}
	if !item.Downloaded {
		menu.Hide(preview.ActionSend)
		menu.Hide(preview.ActionOpenWith)
	}
}

var (
	_ preview.MenuPolicy     = MenuFilter{}
	_ preview.FileOperations = (*Ops)(nil)
)
