// Package texture renders procgen noise fields into images.
//
// A Renderer samples a [procgen.PerlinNoise] once per pixel on a pool of
// workers, one row band per task. The result is an *image.Gray that can be
// mapped through a colour Ramp, resampled with Resize and written as PNG,
// BMP or TIFF.
//
//	pn := procgen.NewPerlinNoise(42)
//	img, err := texture.Render(ctx, &pn, 512, 512,
//	    texture.WithFrequency(8),
//	    texture.WithOctaves(6),
//	)
//	if err != nil {
//	    return err
//	}
//	return texture.Save("terrain.png", texture.Colorize(img, texture.Terrain))
package texture
