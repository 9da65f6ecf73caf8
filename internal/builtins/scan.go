package builtins

import (
	"bufio"
	"fmt"
	"io"

	"github.com/macressler/fastr/internal/afs"
	"github.com/macressler/fastr/internal/core"
	"github.com/macressler/fastr/internal/data"
)

const (
	SCAN_FILE_PARAM = iota
	SCAN_WHAT_PARAM
	SCAN_NMAX_PARAM
	SCAN_QUIET_PARAM
)

var Scan = &core.Builtin{
	Name:    "scan",
	Formals: core.NewFormals("file", "what", "nmax", "quiet"),
	Fn:      scan,
}

func init() {
	register(Scan)
}

// scan reads whitespace-separated items from a file (or the standard input) and converts them to the type of 'what'.
func scan(ctx *core.Context, args *core.CallArgs) (data.Value, error) {
	what := args.ArgOr(SCAN_WHAT_PARAM, data.EmptyDouble)
	switch what.Kind() {
	case data.NullKind:
		return nil, args.InvalidArgument(SCAN_WHAT_PARAM)
	case data.ListKind:
		return nil, fmt.Errorf("scan: %w: list 'what'", core.ErrUnsupportedType)
	}

	nmax := -1
	if args.Provided(SCAN_NMAX_PARAM) {
		n, err := parseNMax(ctx, args.Arg(SCAN_NMAX_PARAM))
		if err != nil {
			return nil, err
		}
		nmax = n
	}

	quiet := false
	if args.Provided(SCAN_QUIET_PARAM) {
		quiet = parseQuiet(args.Arg(SCAN_QUIET_PARAM))
	}

	var reader io.Reader
	if !args.Provided(SCAN_FILE_PARAM) {
		reader = ctx.In()
	} else {
		path, err := scalarString(args, SCAN_FILE_PARAM)
		if err != nil {
			return nil, err
		}
		fls := ctx.Filesystem()
		absPath, err := fls.Absolute(path)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		rc, err := afs.OpenReader(fls, absPath)
		if err != nil {
			return nil, fmt.Errorf("scan: cannot open file '%s': %w", absPath, err)
		}
		defer rc.Close()
		reader = rc
	}

	items, err := readItems(reader, nmax)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	if !quiet {
		plural := "s"
		if len(items) == 1 {
			plural = ""
		}
		fmt.Fprintf(ctx.Out(), "Read %d item%s\n", len(items), plural)
	}

	return convertItems(items, what)
}

// parseNMax returns the first element of arg as an integer, NA and negative values mean no limit.
func parseNMax(ctx *core.Context, arg data.Value) (int, error) {
	status := data.ConversionStatus{}
	n, err := data.AsInt(arg, &status)
	if err != nil {
		return 0, fmt.Errorf("scan: %w 'nmax'", core.ErrInvalidArgument)
	}
	if status.NAIntroduced {
		ctx.Warn(core.NAsIntroducedByCoercion, "NAs introduced by coercion")
	}
	if n.Len() == 0 || n.IsNA(0) || n.At(0) < 0 {
		return -1, nil
	}
	return int(n.At(0)), nil
}

func parseQuiet(arg data.Value) bool {
	l, err := data.AsLogical(arg, &data.ConversionStatus{})
	return err == nil && l.Len() >= 1 && l.At(0) == data.True
}

func scalarString(args *core.CallArgs, param int) (string, error) {
	s, ok := args.Arg(param).(*data.StringVector)
	if !ok || s.Len() != 1 || s.IsNA(0) {
		return "", args.InvalidArgument(param)
	}
	return s.At(0), nil
}

// readItems splits the content of r on whitespace, nmax < 0 means no limit.
func readItems(r io.Reader, nmax int) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var items []string
	for (nmax < 0 || len(items) < nmax) && scanner.Scan() {
		items = append(items, scanner.Text())
	}
	return items, scanner.Err()
}

// convertItems converts the items to the type of what, NA items are missing values and every
// other item that cannot be converted is an error.
func convertItems(items []string, what data.Value) (data.Value, error) {
	status := data.ConversionStatus{}

	check := func(expected string, item string) error {
		if status.NAIntroduced || status.OutOfRange {
			return fmt.Errorf("%w: expected %s, got '%s'", core.ErrScanUnexpected, expected, item)
		}
		return nil
	}

	switch what.Kind() {
	case data.StringKind:
		var naIndexes []int
		for i, item := range items {
			if item == "NA" {
				naIndexes = append(naIndexes, i)
			}
		}
		return data.NewStringVectorWithNA(items, naIndexes...), nil
	case data.DoubleKind:
		elements := make([]float64, len(items))
		for i, item := range items {
			elements[i] = data.String2Double(item, &status)
			if err := check("a real", item); err != nil {
				return nil, err
			}
		}
		return data.NewDoubleVector(elements...), nil
	case data.IntKind:
		elements := make([]int32, len(items))
		for i, item := range items {
			elements[i] = data.String2Int(item, &status)
			if err := check("an integer", item); err != nil {
				return nil, err
			}
		}
		return data.NewIntVector(elements...), nil
	case data.LogicalKind:
		elements := make([]data.Logical, len(items))
		for i, item := range items {
			elements[i] = data.String2Logical(item, &status)
			if err := check("a logical", item); err != nil {
				return nil, err
			}
		}
		return data.NewLogicalVector(elements...), nil
	case data.RawKind:
		elements := make([]byte, len(items))
		for i, item := range items {
			elements[i] = data.String2Raw(item, &status)
			if err := check("a raw", item); err != nil {
				return nil, err
			}
		}
		return data.NewRawVector(elements...), nil
	case data.ComplexKind:
		elements := make([]complex128, len(items))
		for i, item := range items {
			elements[i] = data.String2Complex(item, &status)
			if err := check("a complex", item); err != nil {
				return nil, err
			}
		}
		return data.NewComplexVector(elements...), nil
	}
	return nil, fmt.Errorf("scan: %w: '%s'", core.ErrUnsupportedType, what.Kind())
}
