package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"unicode"

	"geometry_tool/config"
	"geometry_tool/model"
	"geometry_tool/shape"
	"geometry_tool/stl"
)

const stlHeader = "geometry_tool triangle"

var vertexOrdinals = [shape.VertexCount]string{"first", "second", "third"}

// Driver runs the console session. It owns the current triangle; nil means
// none has been created yet.
type Driver struct {
	in       *bufio.Scanner
	out      io.Writer
	settings config.Settings
	triangle *shape.Triangle
	clear    func()
}

func NewDriver(in io.Reader, out io.Writer, settings config.Settings) *Driver {
	d := &Driver{
		in:       bufio.NewScanner(in),
		out:      out,
		settings: settings,
		clear:    func() {},
	}
	if settings.ClearScreen {
		d.clear = clearConsole
	}
	return d
}

// Run plays the array exercise (when enabled) and then the triangle menu until
// the user exits or the input runs dry.
func (d *Driver) Run() error {
	if d.settings.ArrayDemo {
		if err := d.arrayDemo(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
	err := d.menu()
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (d *Driver) printf(format string, a ...interface{}) {
	fmt.Fprintf(d.out, format, a...)
}

// readLine prompts and returns the next input line without surrounding space.
func (d *Driver) readLine(prompt string) (string, error) {
	d.printf("%s", prompt)
	if !d.in.Scan() {
		if err := d.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(d.in.Text()), nil
}

// readInt prompts until the user enters a valid integer.
func (d *Driver) readInt(prompt string) (int, error) {
	for {
		line, err := d.readLine(prompt)
		if err != nil {
			return 0, err
		}
		if isValidInputInt(line) {
			if n, err := strconv.Atoi(line); err == nil {
				return n, nil
			}
		}
		d.printf("Invalid Input! Please enter a valid integer!\n\n")
	}
}

// isValidInputInt accepts an optional sign followed by at least one digit.
func isValidInputInt(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// readLetter prompts until a single letter contained in allowed (case-insensitive) is entered
// and returns it lowercased.
func (d *Driver) readLetter(prompt, allowed, invalidMsg string) (rune, error) {
	for {
		line, err := d.readLine(prompt)
		if err != nil {
			return 0, err
		}
		runes := []rune(line)
		if len(runes) != 1 || !unicode.IsLetter(runes[0]) {
			d.printf("Invalid Input! Please enter a single letter!\n\n")
			continue
		}
		c := unicode.ToLower(runes[0])
		if strings.ContainsRune(allowed, c) {
			return c, nil
		}
		d.printf("%s\n\n", invalidMsg)
	}
}

func (d *Driver) arrayDemo() error {
	for {
		d.printf("Dynamic Array\n\n")

		var size int
		for size <= 0 {
			n, err := d.readInt("Enter the size of the array: ")
			if err != nil {
				return err
			}
			if n <= 0 {
				d.printf("Invalid array size! Please enter a positive integer!\n\n")
			}
			size = n
		}

		d.printf("\nCreating the array...\n\n")
		a, err := createArray(size)
		if err != nil {
			return err
		}
		d.printf("Initializing the array...\n\n")
		initializeArray(a)
		d.printf("Printing the elements in the array...\n")
		d.printf("%s\n\n", formatArray(a))
		d.printf("Deleting the array...\n\n")

		choice, err := d.readLetter(
			"Create another array?\nPlease enter y for yes or enter n for no: ",
			"yn",
			"Invalid choice! Please enter y (yes) or n (no)!",
		)
		if err != nil {
			return err
		}
		d.printf("\n\n")
		d.clear()
		if choice == 'n' {
			d.printf("\nEnd of Dynamic Array Manipulation...\n\n")
			return nil
		}
	}
}

func (d *Driver) menu() error {
	for {
		d.printf("- Triangle Menu -\n")
		d.printf("1. Create a triangle\n")
		d.printf("2. Translate the triangle\n")
		d.printf("3. Display the triangle\n")
		d.printf("4. Calculate the triangle's area\n")
		d.printf("5. Save the triangle to %s\n", d.settings.StlPath)
		d.printf("6. Load a triangle from %s\n", d.settings.StlPath)
		d.printf("7. Describe the GPU vertex buffer\n")
		d.printf("8. Exit\n")

		choice, err := d.readInt("Enter your choice: ")
		if err != nil {
			return err
		}
		d.printf("\n")

		switch choice {
		case 1:
			err = d.createTriangle()
		case 2:
			err = d.translateTriangle()
		case 3:
			d.displayTriangle()
		case 4:
			d.calculateTriangleArea()
		case 5:
			d.saveTriangle()
		case 6:
			d.loadTriangle()
		case 7:
			d.describeVertexBuffer()
		case 8:
			d.printf("Exiting...\n")
			return nil
		default:
			d.printf("Invalid choice! Please enter a number between 1 and 8!\n\n")
		}
		if err != nil {
			return err
		}
	}
}

// requireTriangle reports whether a triangle exists and tells the user if not.
func (d *Driver) requireTriangle() bool {
	if d.triangle == nil {
		d.printf("No triangle has been created yet! Please create a triangle first.\n\n")
		return false
	}
	return true
}

func (d *Driver) createTriangle() error {
	var tri shape.Triangle
	for i, ordinal := range vertexOrdinals {
		var c [3]int
		for j, axis := range []string{"x", "y", "z"} {
			n, err := d.readInt(fmt.Sprintf("Enter the %s coordinate of the %s point: ", axis, ordinal))
			if err != nil {
				return err
			}
			c[j] = n
		}
		if err := tri.SetVertex(i, shape.NewPoint(c[0], c[1], c[2])); err != nil {
			return err
		}
		d.printf("\n")
	}
	d.triangle = &tri
	d.printf("Triangle created!\n\n")
	return nil
}

func (d *Driver) translateTriangle() error {
	if !d.requireTriangle() {
		return nil
	}
	dist, err := d.readInt("Enter the translation distance: ")
	if err != nil {
		return err
	}
	axis, err := d.readLetter(
		"Enter the axis of translation (x, y or z): ",
		"xyz",
		"Invalid axis! Please enter x, y or z!",
	)
	if err != nil {
		return err
	}
	if err := d.triangle.TranslateRune(dist, axis); err != nil {
		// readLetter only lets x, y and z through
		d.printf("Translation failed: %s\n\n", err)
		return nil
	}
	d.printf("Triangle translated by %d along the %c axis.\n\n", dist, axis)
	return nil
}

func (d *Driver) displayTriangle() {
	if !d.requireTriangle() {
		return
	}
	d.printf("%s", d.triangle.Display())
}

func (d *Driver) calculateTriangleArea() {
	if !d.requireTriangle() {
		return
	}
	d.printf("The area of the triangle is: %.2f\n\n", d.triangle.CalcArea())
}

func (d *Driver) saveTriangle() {
	if !d.requireTriangle() {
		return
	}
	if err := stl.WriteStlFile(d.settings.StlPath, stlHeader, *d.triangle); err != nil {
		log.Printf("Saving triangle failed: %s", err)
		d.printf("Could not save the triangle: %s\n\n", err)
		return
	}
	d.printf("Triangle saved to %s\n\n", d.settings.StlPath)
}

func (d *Driver) loadTriangle() {
	tris, err := stl.ReadStlFile(d.settings.StlPath)
	if err != nil {
		log.Printf("Loading triangle failed: %s", err)
		d.printf("Could not load a triangle: %s\n\n", err)
		return
	}
	if len(tris) == 0 {
		d.printf("%s does not contain any triangles.\n\n", d.settings.StlPath)
		return
	}
	if len(tris) > 1 {
		d.printf("%s contains %d triangles, using the first one.\n", d.settings.StlPath, len(tris))
	}
	tri := tris[0]
	d.triangle = &tri
	d.printf("Triangle loaded from %s\n\n", d.settings.StlPath)
}

func (d *Driver) describeVertexBuffer() {
	if !d.requireTriangle() {
		return
	}
	m, err := model.NewTriangleModel(d.settings.ModelName, *d.triangle)
	if err != nil {
		d.printf("Could not build the vertex buffer: %s\n\n", err)
		return
	}
	binding := model.GetVertexBindingDescription()
	d.printf("- Vertex Buffer '%s' -\n", m.Name)
	d.printf("Stride: %d bytes\n", binding.Stride)
	for _, attr := range model.GetVertexAttributeDescriptions() {
		d.printf("Attribute %d: offset %d\n", attr.Location, attr.Offset)
	}
	d.printf("Vertex buffer: %d bytes, index buffer: %d bytes\n", m.GetVBufferSize(), m.GetIdxBufferSize())
	for i, v := range m.Mesh.Vertices {
		d.printf("Vertex %d: pos (%g, %g, %g) color (%g, %g, %g)\n",
			i, v.Pos.X, v.Pos.Y, v.Pos.Z, v.Color.X, v.Color.Y, v.Color.Z)
	}
	d.printf("\n")
}
