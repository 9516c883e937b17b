package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"bikeshare/aggregator"
	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/entities/selector"
	"bikeshare/domain/entities/station"
	"bikeshare/explorer/config"
	"bikeshare/filter"
	"bikeshare/loader"
	"bikeshare/prompt"
	"bikeshare/report"
	"bikeshare/store"

	log "github.com/sirupsen/logrus"
)

const stage = "explorer"

type reportPublisher interface {
	PublishReport(ctx context.Context, response *queryresponse.QueryResponse) error
}

// Explorer runs the interactive loop: ask filters, load, filter, aggregate, report and page raw data
type Explorer struct {
	config    *config.ExplorerConfig
	loader    *loader.Loader
	prompter  *prompt.Prompter
	emitter   *report.Emitter
	writer    io.Writer
	publisher reportPublisher
}

// NewExplorer publisher may be nil, in that case reports are only written to writer
func NewExplorer(explorerConfig *config.ExplorerConfig, reader io.Reader, writer io.Writer, publisher reportPublisher) *Explorer {
	return &Explorer{
		config:    explorerConfig,
		loader:    loader.NewLoader(explorerConfig.Loader),
		prompter:  prompt.NewPrompter(reader, writer),
		emitter:   report.NewEmitter(writer),
		writer:    writer,
		publisher: publisher,
	}
}

func (e *Explorer) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[stage: %s][method: %s][status: ERROR] %s: %s", stage, method, message, err.Error())
	}
	return fmt.Sprintf("[stage: %s][method: %s][status: OK] %s", stage, method, message)
}

// Run asks for queries until the user doesn't want to restart or the input is closed.
// A query that fails is reported and doesn't stop the loop.
func (e *Explorer) Run(ctx context.Context) error {
	e.prompter.Say("Hello! Let's explore some US bikeshare data!")

	for {
		city, s, err := e.askFilters()
		if errors.Is(err, prompt.ErrInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		response, view, err := e.RunQuery(ctx, city, s)
		if err != nil {
			log.Error(e.getLogMessage("Run", fmt.Sprintf("error running query for %s", city), err))
			e.prompter.Say(fmt.Sprintf("\nCould not analyze %s: %s", city, err.Error()))
		} else {
			err = e.emitter.EmitReport(response)
			if err != nil {
				return err
			}

			err = e.showRawData(view)
			if errors.Is(err, prompt.ErrInputClosed) {
				return nil
			}
			if err != nil {
				return err
			}
		}

		restart, err := e.prompter.AskYesNo("Would you like to restart?")
		if errors.Is(err, prompt.ErrInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}
		if !restart {
			return nil
		}
	}
}

// RunQuery loads the dataset of city, applies s and computes the statistics.
// The returned view is the filtered set of trips the statistics were computed on.
func (e *Explorer) RunQuery(ctx context.Context, city string, s selector.Selector) (*queryresponse.QueryResponse, *store.RecordStore, error) {
	cityConfig, ok := e.config.GetCity(city)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", loader.ErrUnknownCity, city)
	}

	start := time.Now()
	recordStore, err := e.loader.LoadTrips(city, cityConfig.TripsFile)
	if err != nil {
		return nil, nil, err
	}

	stations := e.loadStations(city, cityConfig.StationsFile)
	view := filter.Apply(recordStore, s)
	response := aggregator.NewAggregator(cityConfig.TripsFile, stations).Aggregate(view, s)
	log.Info(e.getLogMessage("RunQuery", fmt.Sprintf("query %s for %s done in %s", response.GetQueryID(), city, time.Since(start)), nil))

	if e.publisher != nil {
		err = e.publisher.PublishReport(ctx, response)
		if err != nil {
			// the report is still shown to the user
			log.Error(e.getLogMessage("RunQuery", "error publishing report", err))
		}
	}

	return response, view, nil
}

// loadStations the stations file is optional, without it the trip distance is not reported
func (e *Explorer) loadStations(city string, stationsFile string) map[string]station.StationData {
	if stationsFile == "" {
		return nil
	}

	stations, err := e.loader.LoadStations(city, stationsFile)
	if err != nil {
		log.Warn(e.getLogMessage("loadStations", "stations not loaded, trip distance disabled", err))
		return nil
	}
	return stations
}

func (e *Explorer) askFilters() (string, selector.Selector, error) {
	city, err := e.prompter.AskCity(e.config.GetCityNames())
	if err != nil {
		return "", selector.Selector{}, err
	}

	month, err := e.prompter.AskMonth(selector.GetMonthNames(), selector.All)
	if err != nil {
		return "", selector.Selector{}, err
	}

	day, err := e.prompter.AskDay(selector.GetDayNames(), selector.All)
	if err != nil {
		return "", selector.Selector{}, err
	}

	s, err := selector.NewSelector(month, day)
	if err != nil {
		return "", selector.Selector{}, err
	}
	return city, s, nil
}

func (e *Explorer) showRawData(view *store.RecordStore) error {
	if view.IsEmpty() {
		return nil
	}

	pager := report.NewRawDataPager(e.writer, view, e.config.PageSize)
	question := "Do you want to see the raw data?"
	for pager.HasNext() {
		answer, err := e.prompter.AskYesNo(question)
		if err != nil || !answer {
			return err
		}

		err = pager.Next()
		if err != nil {
			return err
		}
		question = fmt.Sprintf("Do you want to see %v more rows?", e.config.PageSize)
	}
	return nil
}
