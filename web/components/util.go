package components

import (
	"fmt"
	"net/url"

	"github.com/dasdy/vilviz/model"
)

// LayerPageLink selects a layer and shows the index page.
func LayerPageLink(id model.LayerID) string {
	return fmt.Sprintf("/?layer=%d", id)
}

// LayerImageLink points at the rendered image of a layer.
func LayerImageLink(id model.LayerID, format string) string {
	if format == "" {
		format = "svg"
	}

	return fmt.Sprintf("/layer?id=%d&format=%s", id, url.QueryEscape(format))
}

func RecentSelectLink(name string) string {
	return "/recent/select?name=" + url.QueryEscape(name)
}

func ThemeLink(theme string) string {
	return "/theme?name=" + url.QueryEscape(theme)
}

func layerTitle(id model.LayerID) string {
	return fmt.Sprintf("Layer %d", id)
}

func pageTitle(rc *RenderContext) string {
	if rc.Name == "" {
		return "vilviz"
	}

	return rc.Name + " - vilviz"
}
