package dashboard

import (
	"net/http"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/mhollis/redditlog/internal/ods"
	"github.com/mhollis/redditlog/internal/storage"
)

// StartServer serves charts over the logged posts. The spreadsheet is
// re-read on every request so the page always reflects the last flush.
func StartServer(odsPath string, port string) error {
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		subCounts := countBySubreddit(odsPath)

		pie := charts.NewPie()
		pie.SetGlobalOptions(
			charts.WithTitleOpts(opts.Title{Title: "Subreddit Dominance"}),
			charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		)
		var pieItems []opts.PieData
		for k, v := range subCounts {
			pieItems = append(pieItems, opts.PieData{Name: k, Value: v})
		}
		pie.AddSeries("Posts", pieItems)

		bar := charts.NewBar()
		bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Busiest Subreddits"}))

		type count struct {
			sub string
			n   int
		}
		var counts []count
		for k, v := range subCounts {
			counts = append(counts, count{k, v})
		}
		sort.Slice(counts, func(i, j int) bool { return counts[i].n > counts[j].n })
		if len(counts) > 10 {
			counts = counts[:10]
		}
		var barX []string
		var barY []opts.BarData
		for _, c := range counts {
			barX = append(barX, c.sub)
			barY = append(barY, opts.BarData{Value: c.n})
		}
		bar.SetXAxis(barX).AddSeries("Posts", barY)

		pie.Render(w)
		bar.Render(w)
	})

	return http.ListenAndServe(":"+port, nil)
}

func countBySubreddit(path string) map[string]int {
	counts := make(map[string]int)
	doc, err := ods.Load(path)
	if err != nil {
		return counts
	}
	for i, row := range doc.Table(storage.TableName).Rows {
		if i == 0 || len(row) < 2 {
			continue // header
		}
		counts[row[1]]++
	}
	return counts
}
