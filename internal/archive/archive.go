package archive

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// folderPattern - папки материалов именуются датой yyyymmdd
var folderPattern = regexp.MustCompile(`^\d{8}$`)

var ErrArticleNotFound = errors.New("article not found")

// Manifest - перечень папок с материалами, по убыванию даты
type Manifest struct {
	Folders     []string  `json:"folders"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// Article - один материал: markdown-документ и необязательная обложка
type Article struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Cover   string `json:"cover,omitempty"`
}

// Library обслуживает каталог материалов. Манифест кешируется в памяти
// и перестраивается по расписанию (cron) или явным Rescan.
type Library struct {
	dir    string
	logger *logrus.Logger

	mu       sync.RWMutex
	manifest Manifest
}

func NewLibrary(dir string, logger *logrus.Logger) *Library {
	return &Library{dir: dir, logger: logger}
}

// Rescan перечитывает каталог и перестраивает манифест. Папки
// обнаруживаются, а не запрашиваются: берем только директории вида
// yyyymmdd и сортируем по убыванию, чтобы свежие шли первыми.
func (l *Library) Rescan() error {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return fmt.Errorf("failed to read actions dir: %w", err)
	}

	folders := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() && folderPattern.MatchString(e.Name()) {
			folders = append(folders, e.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(folders)))

	l.mu.Lock()
	l.manifest = Manifest{Folders: folders, LastUpdated: time.Now().UTC()}
	l.mu.Unlock()

	l.logger.WithField("folders", len(folders)).Info("Actions manifest rebuilt")
	return nil
}

// Manifest возвращает текущий манифест (копию)
func (l *Library) Manifest() Manifest {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := Manifest{
		Folders:     append([]string(nil), l.manifest.Folders...),
		LastUpdated: l.manifest.LastUpdated,
	}
	return out
}

// Load читает материал по идентификатору папки: документ лежит в
// <id>/<id>.md, первая строка с '#' становится заголовком.
func (l *Library) Load(id string) (*Article, error) {
	if !folderPattern.MatchString(id) {
		return nil, ErrArticleNotFound
	}

	raw, err := os.ReadFile(filepath.Join(l.dir, id, id+".md"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to read article %s: %w", id, err)
	}

	title := id
	var bodyLines []string
	for i, line := range strings.Split(string(raw), "\n") {
		if i == 0 && strings.HasPrefix(strings.TrimSpace(line), "#") {
			title = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "# "))
			continue
		}
		bodyLines = append(bodyLines, line)
	}

	art := &Article{
		ID:      id,
		Date:    formatFolderDate(id),
		Title:   title,
		Content: strings.TrimSpace(strings.Join(bodyLines, "\n")),
	}

	// Обложка опциональна, ищем первое подходящее имя
	for _, name := range []string{"cover.jpg", "cover.png", "cover.jpeg"} {
		if _, err := os.Stat(filepath.Join(l.dir, id, name)); err == nil {
			art.Cover = fmt.Sprintf("%s/%s", id, name)
			break
		}
	}
	return art, nil
}

// formatFolderDate превращает yyyymmdd в yyyy年mm月dd日
func formatFolderDate(id string) string {
	if len(id) != 8 {
		return id
	}
	return fmt.Sprintf("%s年%s月%s日", id[0:4], id[4:6], id[6:8])
}
