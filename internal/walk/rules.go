package walk

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/temirov/ftrek/internal/utils"
)

const (
	gitInfoDirectoryName = "info"
	gitExcludeFileName   = "exclude"
	negationPrefix       = "!"
	pathSeparator        = "/"

	errorLoadRulesFormat = "loading %s: %w"
)

// ruleFileNames lists the per-directory rule files in the order they are read.
var ruleFileNames = []string{utils.GitIgnoreFileName, utils.IgnoreFileName}

// LoadIgnoreFilePatterns reads an ignore file and returns its patterns.
// A missing file yields no patterns and no error.
//
// #nosec G304
func LoadIgnoreFilePatterns(ignoreFilePath string) ([]string, error) {
	fileHandle, openFileError := os.Open(ignoreFilePath)
	if openFileError != nil {
		if os.IsNotExist(openFileError) {
			return nil, nil
		}
		return nil, openFileError
	}
	defer fileHandle.Close()

	var ignorePatterns []string
	scanner := bufio.NewScanner(fileHandle)
	for scanner.Scan() {
		trimmedLine := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(trimmedLine) == "" || strings.HasPrefix(trimmedLine, "#") {
			continue
		}
		ignorePatterns = append(ignorePatterns, trimmedLine)
	}
	if scanError := scanner.Err(); scanError != nil {
		return nil, scanError
	}
	return utils.DeduplicatePatterns(ignorePatterns), nil
}

// ruleSet is the compiled content of the rule files of one directory.
// whitelist holds the negated patterns with the "!" removed, so a path that
// only a negation matches can be told apart from a path nothing matches.
type ruleSet struct {
	rules     *ignore.GitIgnore
	whitelist *ignore.GitIgnore
}

func compileRuleSet(patterns []string) *ruleSet {
	var negatedPatterns []string
	for _, pattern := range patterns {
		trimmedPattern := strings.Trim(pattern, " ")
		if strings.HasPrefix(trimmedPattern, negationPrefix) {
			negatedPatterns = append(negatedPatterns, strings.TrimPrefix(trimmedPattern, negationPrefix))
		}
	}
	set := &ruleSet{rules: ignore.CompileIgnoreLines(patterns...)}
	if len(negatedPatterns) > 0 {
		set.whitelist = ignore.CompileIgnoreLines(negatedPatterns...)
	}
	return set
}

// decide reports whether candidate is ignored and whether this rule set had
// any opinion about it. Within a set the last matching pattern wins.
func (set *ruleSet) decide(candidate string) (bool, bool) {
	matched, pattern := set.rules.MatchesPathHow(candidate)
	if matched {
		return true, true
	}
	if pattern != nil {
		return false, true
	}
	if set.whitelist != nil && set.whitelist.MatchesPath(candidate) {
		return false, true
	}
	return false, false
}

// ancestorRuleSet is a rule set found above the walk root. rootPrefix is the
// root's slash-separated path relative to the directory holding the rules.
type ancestorRuleSet struct {
	rootPrefix string
	set        *ruleSet
}

// ignoreRules holds the compiled rule files discovered for a walk. Rules from
// a directory apply to paths below it, matched relative to that directory.
// The deepest rule set with an opinion about a path decides.
type ignoreRules struct {
	root        string
	byDirectory map[string]*ruleSet
	// ancestors is ordered nearest first.
	ancestors []ancestorRuleSet
}

func newIgnoreRules(root string) *ignoreRules {
	return &ignoreRules{
		root:        filepath.Clean(root),
		byDirectory: make(map[string]*ruleSet),
	}
}

// loadRoot reads the root directory's rule files plus .git/info/exclude.
func (rules *ignoreRules) loadRoot() error {
	set, loadError := loadRuleSet(rules.root, gitExcludePath(rules.root))
	if loadError != nil || set == nil {
		return loadError
	}
	rules.byDirectory[rules.root] = set
	return nil
}

// loadDirectory compiles the rule files of a directory below the root.
func (rules *ignoreRules) loadDirectory(directory string) error {
	directory = filepath.Clean(directory)
	set, loadError := loadRuleSet(directory)
	if loadError != nil || set == nil {
		return loadError
	}
	rules.byDirectory[directory] = set
	return nil
}

// loadAncestors reads the rule files of the directories above logicalRoot, up
// to and including the enclosing repository root (the nearest directory
// holding .git). Without a repository every ancestor up to the filesystem
// root is read. A root that is itself a repository has no ancestor rules.
func (rules *ignoreRules) loadAncestors(logicalRoot string) error {
	absoluteRoot, absError := filepath.Abs(logicalRoot)
	if absError != nil {
		return fmt.Errorf(errorLoadRulesFormat, logicalRoot, absError)
	}
	if isRepositoryRoot(absoluteRoot) {
		return nil
	}
	directory := absoluteRoot
	for {
		parent := filepath.Dir(directory)
		if parent == directory {
			return nil
		}
		directory = parent

		repositoryRoot := isRepositoryRoot(directory)
		var extraFiles []string
		if repositoryRoot {
			extraFiles = append(extraFiles, gitExcludePath(directory))
		}
		set, loadError := loadRuleSet(directory, extraFiles...)
		if loadError != nil {
			return loadError
		}
		if set != nil {
			rootPrefix, relError := filepath.Rel(directory, absoluteRoot)
			if relError != nil {
				return fmt.Errorf(errorLoadRulesFormat, directory, relError)
			}
			rules.ancestors = append(rules.ancestors, ancestorRuleSet{rootPrefix: filepath.ToSlash(rootPrefix), set: set})
		}
		if repositoryRoot {
			return nil
		}
	}
}

// ignored reports whether path is excluded. Rule sets are consulted from the
// path's parent outward, ancestors of the root last; the first one with an
// opinion decides, so a deeper "!pattern" re-includes what a shallower file ignores.
func (rules *ignoreRules) ignored(path string, isDir bool) bool {
	cleanPath := filepath.Clean(path)
	if cleanPath == rules.root {
		return false
	}
	directorySuffix := ""
	if isDir {
		directorySuffix = pathSeparator
	}

	directory := filepath.Dir(cleanPath)
	for {
		if set, exists := rules.byDirectory[directory]; exists {
			candidate := utils.RelativePathOrSelf(cleanPath, directory) + directorySuffix
			if ignored, decided := set.decide(candidate); decided {
				return ignored
			}
		}
		if directory == rules.root {
			break
		}
		parent := filepath.Dir(directory)
		if parent == directory {
			break
		}
		directory = parent
	}

	relativeToRoot := utils.RelativePathOrSelf(cleanPath, rules.root)
	for _, ancestor := range rules.ancestors {
		candidate := ancestor.rootPrefix + pathSeparator + relativeToRoot + directorySuffix
		if ignored, decided := ancestor.set.decide(candidate); decided {
			return ignored
		}
	}
	return false
}

// loadRuleSet compiles the rule files of directory. Extra files are read first
// and so lose to the directory's own files. A directory without rules yields nil.
func loadRuleSet(directory string, extraFiles ...string) (*ruleSet, error) {
	var patterns []string
	candidates := append(append([]string{}, extraFiles...), ruleFilePaths(directory)...)
	for _, candidate := range candidates {
		filePatterns, loadError := LoadIgnoreFilePatterns(candidate)
		if loadError != nil {
			return nil, fmt.Errorf(errorLoadRulesFormat, candidate, loadError)
		}
		patterns = append(patterns, filePatterns...)
	}
	if len(patterns) == 0 {
		return nil, nil
	}
	return compileRuleSet(patterns), nil
}

func gitExcludePath(directory string) string {
	return filepath.Join(directory, utils.GitDirectoryName, gitInfoDirectoryName, gitExcludeFileName)
}

func isRepositoryRoot(directory string) bool {
	_, statError := os.Lstat(filepath.Join(directory, utils.GitDirectoryName))
	return statError == nil
}

func ruleFilePaths(directory string) []string {
	paths := make([]string, 0, len(ruleFileNames))
	for _, fileName := range ruleFileNames {
		paths = append(paths, filepath.Join(directory, fileName))
	}
	return paths
}
