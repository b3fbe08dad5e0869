package http

import (
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/ghodss/yaml"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/njprem/GuideMe_Site/internal/util"
)

// apiDoc holds the search API description found at SWAGGER_SPEC_PATH, converted to
// JSON. The file is converted again only after its modification time changes.
type apiDoc struct {
	path string
	log  *logrus.Logger

	mu      sync.Mutex
	modTime time.Time
	json    []byte
}

func loadAPIDoc(path string, log *logrus.Logger) (*apiDoc, error) {
	d := &apiDoc{path: path, log: log}
	if _, err := d.current(); err != nil {
		return nil, err
	}
	return d, nil
}

// current returns the JSON document, refreshing it when the YAML file changed on disk.
func (d *apiDoc) current() ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	info, err := os.Stat(d.path)
	if err != nil {
		return d.json, fmt.Errorf("stat api doc %s: %w", d.path, err)
	}
	if d.json != nil && info.ModTime().Equal(d.modTime) {
		return d.json, nil
	}
	data, err := os.ReadFile(d.path)
	if err != nil {
		return d.json, fmt.Errorf("read api doc %s: %w", d.path, err)
	}
	converted, err := yaml.YAMLToJSON(data)
	if err != nil {
		return d.json, fmt.Errorf("convert api doc %s: %w", d.path, err)
	}
	d.json = converted
	d.modTime = info.ModTime()
	return d.json, nil
}

func (d *apiDoc) serve(c echo.Context) error {
	doc, err := d.current()
	if err != nil {
		d.log.WithError(err).Warn("api doc refresh failed")
		if doc == nil {
			return c.JSON(http.StatusInternalServerError, util.Error("api description unavailable"))
		}
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, doc)
}

// RegisterSwagger mounts the Swagger UI under /swagger for the search API described
// in specPath. A broken or missing file at startup is an error and nothing is mounted;
// a file that breaks later keeps serving the last good copy.
func RegisterSwagger(e *echo.Echo, specPath string, log *logrus.Logger) error {
	doc, err := loadAPIDoc(specPath, log)
	if err != nil {
		return err
	}
	e.GET("/swagger/doc.json", doc.serve)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}
